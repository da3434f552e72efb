package mock

import "github.com/fwojciec/leetdoc"

var _ leetdoc.Node = (*Node)(nil)

// Node is a mock implementation of leetdoc.Node.
type Node struct {
	FindFn       func(selector string) []leetdoc.Node
	FirstFn      func(selector string) leetdoc.Node
	IsFn         func(selector string) bool
	TagFn        func() string
	AttrFn       func(name string) (string, bool)
	TextFn       func() string
	PrunedTextFn func(prune func(leetdoc.Node) bool) string
}

func (n *Node) Find(selector string) []leetdoc.Node {
	return n.FindFn(selector)
}

func (n *Node) First(selector string) leetdoc.Node {
	return n.FirstFn(selector)
}

func (n *Node) Is(selector string) bool {
	return n.IsFn(selector)
}

func (n *Node) Tag() string {
	return n.TagFn()
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) Text() string {
	return n.TextFn()
}

func (n *Node) PrunedText(prune func(leetdoc.Node) bool) string {
	return n.PrunedTextFn(prune)
}
