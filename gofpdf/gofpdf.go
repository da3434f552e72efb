// Package gofpdf renders problem set documents as PDF files.
package gofpdf

import (
	"io"
	"strings"

	"github.com/fwojciec/leetdoc"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Renderer implements leetdoc.Renderer at compile time.
var _ leetdoc.Renderer = (*Renderer)(nil)

const (
	textFont = "Helvetica"
	codeFont = "Courier"

	lineHeight = 5.0
	tabWidth   = 4
)

// Renderer writes a problem set as an A4 PDF.
type Renderer struct {
	compress bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithCompression toggles compression of page content streams.
func WithCompression(on bool) RendererOption {
	return func(r *Renderer) {
		r.compress = on
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ext returns "pdf".
func (r *Renderer) Ext() string { return "pdf" }

// Render writes the PDF to w.
func (r *Renderer) Render(w io.Writer, set *leetdoc.ProblemSet, problems []*leetdoc.Problem) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetTitle(set.Title, true)
	pdf.SetAuthor(set.SubmittedBy, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont(textFont, "B", 16)
	pdf.MultiCell(0, 8, tr(set.Title), "", "L", false)
	pdf.SetFont(textFont, "", 11)
	pdf.MultiCell(0, 6, tr(leetdoc.SubmittedByLabel+set.SubmittedBy), "", "L", false)

	for _, p := range problems {
		pdf.Ln(lineHeight)

		pdf.SetFont(textFont, "B", 13)
		pdf.MultiCell(0, 7, tr(p.Name), "", "L", false)

		pdf.SetFont(textFont, "B", 11)
		pdf.MultiCell(0, 6, leetdoc.SubmissionLinkLabel, "", "L", false)
		pdf.SetFont(textFont, "", 11)
		pdf.SetTextColor(0, 0, 255)
		pdf.WriteLinkString(6, p.SubmissionLink, p.SubmissionLink)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)

		pdf.SetFont(textFont, "B", 11)
		pdf.MultiCell(0, 6, leetdoc.CodeLabel, "", "L", false)

		pdf.SetFont(codeFont, "", 9)
		pdf.SetTextColor(255, 0, 0)
		for _, line := range strings.Split(strings.TrimRight(p.Code, "\n"), "\n") {
			line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
			pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
		}
		pdf.SetTextColor(0, 0, 0)
	}

	return pdf.Output(w)
}
