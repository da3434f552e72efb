package leetdoc

import "io"

// Document labels shared by every renderer.
const (
	SubmittedByLabel    = "Submitted by: "
	SubmissionLinkLabel = "Submission Link-"
	CodeLabel           = "Code-"
)

// Renderer writes a problem set document.
type Renderer interface {
	// Render writes the set header followed by one section per problem,
	// in the given order.
	Render(w io.Writer, set *ProblemSet, problems []*Problem) error

	// Ext returns the file extension of the rendered format, without a dot.
	Ext() string
}
