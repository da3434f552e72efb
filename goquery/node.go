// Package goquery adapts goquery selections to the leetdoc.Node tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/leetdoc"
	"golang.org/x/net/html"
)

// Ensure Node implements leetdoc.Node at compile time.
var _ leetdoc.Node = (*Node)(nil)

// Ensure Parser implements leetdoc.Parser at compile time.
var _ leetdoc.Parser = (*Parser)(nil)

// Parser builds node trees from HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses rendered HTML and returns the document root.
func (p *Parser) Parse(src string) (leetdoc.Node, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, leetdoc.Errorf(leetdoc.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)
	return &Node{sel: doc.Selection}, nil
}

// Node is a single element backed by a goquery selection.
type Node struct {
	sel *goquery.Selection
}

// NewNode wraps the first element of a selection.
func NewNode(sel *goquery.Selection) *Node {
	return &Node{sel: sel.First()}
}

// Find returns all descendants matching the selector in document order.
func (n *Node) Find(selector string) []leetdoc.Node {
	var nodes []leetdoc.Node
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// First returns the first descendant matching the selector, or nil.
func (n *Node) First(selector string) leetdoc.Node {
	s := n.sel.Find(selector).First()
	if s.Length() == 0 {
		return nil
	}
	return &Node{sel: s}
}

// Is reports whether the node matches the selector.
func (n *Node) Is(selector string) bool {
	return n.sel.Is(selector)
}

// Tag returns the lower-cased element name.
func (n *Node) Tag() string {
	return strings.ToLower(goquery.NodeName(n.sel))
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the combined text of the node and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// PrunedText clones the node, removes every descendant matched by prune,
// and returns the text of the clone.
func (n *Node) PrunedText(prune func(leetdoc.Node) bool) string {
	clone := n.sel.Clone()

	var doomed []*html.Node
	clone.Find("*").Each(func(_ int, s *goquery.Selection) {
		if prune(&Node{sel: s}) {
			doomed = append(doomed, s.Get(0))
		}
	})

	for _, d := range doomed {
		if d.Parent != nil {
			d.Parent.RemoveChild(d)
		}
	}

	return clone.Text()
}
