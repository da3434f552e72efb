package mock

import "github.com/fwojciec/leetdoc"

var _ leetdoc.Parser = (*Parser)(nil)

// Parser is a mock implementation of leetdoc.Parser.
type Parser struct {
	ParseFn func(html string) (leetdoc.Node, error)
}

func (p *Parser) Parse(html string) (leetdoc.Node, error) {
	return p.ParseFn(html)
}
