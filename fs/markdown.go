package fs

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/leetdoc"
	"gopkg.in/yaml.v3"
)

// Ensure MarkdownRenderer implements leetdoc.Renderer at compile time.
var _ leetdoc.Renderer = (*MarkdownRenderer)(nil)

// Frontmatter is the YAML header of an exported markdown document.
type Frontmatter struct {
	Title       string    `yaml:"title"`
	SubmittedBy string    `yaml:"submittedBy"`
	Problems    int       `yaml:"problems"`
	Exported    time.Time `yaml:"exported"`
}

// MarkdownRenderer renders a problem set as markdown with YAML frontmatter.
type MarkdownRenderer struct {
	// Now returns the export time. Defaults to time.Now.
	Now func() time.Time
}

// NewMarkdownRenderer creates a new MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Now: time.Now}
}

// Ext returns "md".
func (r *MarkdownRenderer) Ext() string { return "md" }

// Render writes the frontmatter, the set header, and one section per problem.
func (r *MarkdownRenderer) Render(w io.Writer, set *leetdoc.ProblemSet, problems []*leetdoc.Problem) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	front, err := yaml.Marshal(Frontmatter{
		Title:       set.Title,
		SubmittedBy: set.SubmittedBy,
		Problems:    len(problems),
		Exported:    now().UTC().Truncate(time.Second),
	})
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("---\n")
	bw.Write(front)
	bw.WriteString("---\n\n")
	bw.WriteString("# " + set.Title + "\n\n")
	bw.WriteString(leetdoc.SubmittedByLabel + set.SubmittedBy + "\n")

	for _, p := range problems {
		bw.WriteString("\n## " + p.Name + "\n\n")
		bw.WriteString(leetdoc.SubmissionLinkLabel + "\n")
		bw.WriteString(p.SubmissionLink + "\n\n")
		bw.WriteString(leetdoc.CodeLabel + "\n\n")
		bw.WriteString("```" + fenceLanguage(p.Language) + "\n")
		bw.WriteString(strings.TrimRight(p.Code, "\n") + "\n")
		bw.WriteString("```\n")
	}

	return bw.Flush()
}

var fenceLanguages = map[string]string{
	"C++":        "cpp",
	"C#":         "csharp",
	"Python3":    "python",
	"JavaScript": "javascript",
	"TypeScript": "typescript",
}

// fenceLanguage returns the info string used for a code fence.
func fenceLanguage(language string) string {
	if lang, ok := fenceLanguages[language]; ok {
		return lang
	}
	return strings.ToLower(strings.ReplaceAll(language, " ", ""))
}
