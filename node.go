package leetdoc

// Node is a read-only view of an element in a rendered page.
// Implementations adapt a concrete document model (e.g., goquery/).
type Node interface {
	// Find returns all descendants matching the CSS selector in document order.
	Find(selector string) []Node

	// First returns the first descendant matching the CSS selector, or nil.
	First(selector string) Node

	// Is reports whether the node itself matches the CSS selector.
	Is(selector string) bool

	// Tag returns the lower-cased element name.
	Tag() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Text returns the combined text of the node and its descendants.
	Text() string

	// PrunedText returns the text of a copy of the node from which every
	// descendant for which prune returns true has been removed.
	// The node itself is left unchanged.
	PrunedText(prune func(Node) bool) string
}

// Page is a snapshot of a rendered page.
type Page struct {
	// URL is the page location. May be an absolute URL or a bare path.
	URL string

	// Root is the document root.
	Root Node
}

// Parser builds a node tree from rendered HTML.
type Parser interface {
	Parse(html string) (Node, error)
}
