package extract

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/leetdoc"
)

// Selectors used to locate code on a submission page.
const (
	// AnnotatedCodeSelector matches code blocks that declare a language.
	AnnotatedCodeSelector = `code[class*="language-"]`

	// LineNumberSelector matches the decorative line-number elements
	// emitted by common syntax highlighters.
	LineNumberSelector = `.linenumber, .react-syntax-highlighter-line-number, [class*="line-number"]`

	// proseSelector marks a block as mixed prose rather than code.
	proseSelector = "p"
)

// FallbackCodeSelectors are tried in order when no annotated code block
// yields a candidate.
var FallbackCodeSelectors = []string{
	".view-lines",
	".monaco-editor .view-lines",
	"pre code",
	`[class*="code-container"]`,
	`[class*="CodeMirror"]`,
	"pre",
	"[data-mode-id]",
}

// MinAlphanumericRatio is the minimum share of letters and digits in a
// candidate. Blocks below it are treated as ASCII art.
const MinAlphanumericRatio = 0.30

var (
	languageClass = regexp.MustCompile(`language-(\w+)`)
	bareNumber    = regexp.MustCompile(`^\d+$`)
)

// Collector gathers code candidates from a page.
type Collector struct {
	// Logger receives debug output. Nil disables logging.
	Logger *slog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(logger *slog.Logger) *Collector {
	return &Collector{Logger: logger}
}

// Collect returns a candidate for every annotated code block that holds
// code, in document order. Blocks containing paragraphs, blocks that are
// empty once line numbers are pruned, and blocks that look like ASCII art
// are skipped.
func (c *Collector) Collect(root leetdoc.Node) []leetdoc.Candidate {
	log := loggerOrDiscard(c.Logger)

	var candidates []leetdoc.Candidate
	for i, node := range root.Find(AnnotatedCodeSelector) {
		tag := languageTag(node)

		if node.First(proseSelector) != nil {
			log.Debug("skip code block with paragraphs", "index", i, "tag", tag)
			continue
		}

		text := strings.TrimSpace(node.PrunedText(isLineNumberNode))
		if text == "" {
			continue
		}

		if ratio := alphanumericRatio(text); ratio < MinAlphanumericRatio {
			log.Debug("skip code block with low alphanumeric ratio", "index", i, "tag", tag, "ratio", ratio)
			continue
		}

		if candidate, ok := leetdoc.NewCandidate(text, tag); ok {
			candidates = append(candidates, candidate)
		}
	}

	log.Debug("collected candidates", "count", len(candidates))
	return candidates
}

// Fallback sweeps generic code containers in FallbackCodeSelectors order
// and returns the line-number-stripped code of the first container that
// passes leetdoc.CheckCode.
func (c *Collector) Fallback(root leetdoc.Node) (string, bool) {
	log := loggerOrDiscard(c.Logger)

	for _, selector := range FallbackCodeSelectors {
		node := root.First(selector)
		if node == nil || strings.TrimSpace(node.Text()) == "" {
			continue
		}

		raw := strings.TrimSpace(node.PrunedText(isMarkedLineNumber))
		code := leetdoc.StripLineNumbers(raw)
		if leetdoc.IsPlausibleCode(code) {
			log.Debug("found code in fallback container", "selector", selector, "length", len(code))
			return code, true
		}
		log.Debug("fallback container failed validation", "selector", selector)
	}

	return "", false
}

// languageTag returns the lower-cased language declared by a code block's
// class, e.g. "language-cpp" yields "cpp".
func languageTag(node leetdoc.Node) string {
	class, _ := node.Attr("class")
	m := languageClass.FindStringSubmatch(class)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// isMarkedLineNumber reports whether a node carries a known line-number class.
func isMarkedLineNumber(n leetdoc.Node) bool {
	return n.Is(LineNumberSelector)
}

// isLineNumberNode reports whether a node is a decorative line number:
// either a known line-number element, or a span holding only a number and
// styled as muted or non-selectable.
func isLineNumberNode(n leetdoc.Node) bool {
	if isMarkedLineNumber(n) {
		return true
	}
	if n.Tag() != "span" {
		return false
	}
	if !bareNumber.MatchString(strings.TrimSpace(n.Text())) {
		return false
	}

	class, _ := n.Attr("class")
	style, _ := n.Attr("style")
	decls := parseStyle(style)

	return decls["color"] == "slategray" ||
		decls["user-select"] == "none" ||
		strings.Contains(class, "line") ||
		strings.Contains(class, "number")
}

// parseStyle splits an inline style attribute into lower-cased
// property/value pairs.
func parseStyle(style string) map[string]string {
	decls := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		decls[strings.ToLower(strings.TrimSpace(prop))] = strings.ToLower(strings.TrimSpace(value))
	}
	return decls
}

// alphanumericRatio returns the share of ASCII letters and digits in s.
func alphanumericRatio(s string) float64 {
	total := utf8.RuneCountInString(s)
	if total == 0 {
		return 0
	}
	n := 0
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			n++
		}
	}
	return float64(n) / float64(total)
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
