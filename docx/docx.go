// Package docx renders problem set documents as Word files.
package docx

import (
	"archive/zip"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/leetdoc"
)

// Ensure Renderer implements leetdoc.Renderer at compile time.
var _ leetdoc.Renderer = (*Renderer)(nil)

// Code run styling.
const (
	CodeFont  = "Courier New"
	CodeColor = "FF0000"

	// codeSize is in half-points.
	codeSize = "20"
)

const (
	wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

	rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
)

// Renderer writes a problem set as a .docx package.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Ext returns "docx".
func (r *Renderer) Ext() string { return "docx" }

// Render writes the document package to w.
func (r *Renderer) Render(w io.Writer, set *leetdoc.ProblemSet, problems []*leetdoc.Problem) error {
	doc := Document(set, problems)

	zw := zip.NewWriter(w)
	parts := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"[Content_Types].xml", writeString(contentTypes)},
		{"_rels/.rels", writeString(rootRels)},
		{"word/document.xml", func(w io.Writer) error {
			_, err := doc.WriteTo(w)
			return err
		}},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return err
		}
		if err := part.write(f); err != nil {
			return err
		}
	}
	return zw.Close()
}

// Document builds the word/document.xml tree: the set title, the submitter,
// then per problem its name, link, and code with one paragraph per line.
func Document(set *leetdoc.ProblemSet, problems []*leetdoc.Problem) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wordNS)
	body := root.CreateElement("w:body")

	heading(body, set.Title, "32")
	paragraph(body, leetdoc.SubmittedByLabel+set.SubmittedBy, false)

	for _, p := range problems {
		paragraph(body, "", false)
		heading(body, p.Name, "28")
		paragraph(body, leetdoc.SubmissionLinkLabel, true)
		paragraph(body, p.SubmissionLink, false)
		paragraph(body, leetdoc.CodeLabel, true)
		for _, line := range strings.Split(strings.TrimRight(p.Code, "\n"), "\n") {
			codeParagraph(body, line)
		}
	}

	return doc
}

func heading(body *etree.Element, text, size string) {
	run := body.CreateElement("w:p").CreateElement("w:r")
	props := run.CreateElement("w:rPr")
	props.CreateElement("w:b")
	props.CreateElement("w:sz").CreateAttr("w:val", size)
	textElement(run, text)
}

func paragraph(body *etree.Element, text string, bold bool) {
	p := body.CreateElement("w:p")
	if text == "" {
		return
	}
	run := p.CreateElement("w:r")
	if bold {
		run.CreateElement("w:rPr").CreateElement("w:b")
	}
	textElement(run, text)
}

func codeParagraph(body *etree.Element, line string) {
	p := body.CreateElement("w:p")
	spacing := p.CreateElement("w:pPr").CreateElement("w:spacing")
	spacing.CreateAttr("w:before", "0")
	spacing.CreateAttr("w:after", "0")

	run := p.CreateElement("w:r")
	props := run.CreateElement("w:rPr")
	fonts := props.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", CodeFont)
	fonts.CreateAttr("w:hAnsi", CodeFont)
	fonts.CreateAttr("w:cs", CodeFont)
	props.CreateElement("w:color").CreateAttr("w:val", CodeColor)
	props.CreateElement("w:sz").CreateAttr("w:val", codeSize)
	textElement(run, line)
}

// textElement adds a w:t that keeps leading and trailing whitespace.
func textElement(run *etree.Element, text string) {
	t := run.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(text)
}

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}
