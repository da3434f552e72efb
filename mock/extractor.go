package mock

import "github.com/fwojciec/leetdoc"

var _ leetdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of leetdoc.Extractor.
type Extractor struct {
	ExtractFn func(page *leetdoc.Page) (*leetdoc.Submission, error)
}

func (e *Extractor) Extract(page *leetdoc.Page) (*leetdoc.Submission, error) {
	return e.ExtractFn(page)
}
