package mock

import (
	"io"

	"github.com/fwojciec/leetdoc"
)

var _ leetdoc.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of leetdoc.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, set *leetdoc.ProblemSet, problems []*leetdoc.Problem) error
	ExtFn    func() string
}

func (r *Renderer) Render(w io.Writer, set *leetdoc.ProblemSet, problems []*leetdoc.Problem) error {
	return r.RenderFn(w, set, problems)
}

func (r *Renderer) Ext() string {
	return r.ExtFn()
}
