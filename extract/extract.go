// Package extract turns a rendered LeetCode submission page into a
// leetdoc.Submission.
package extract

import (
	"log/slog"
	"strings"

	"github.com/fwojciec/leetdoc"
)

// Ensure Extractor implements leetdoc.Extractor at compile time.
var _ leetdoc.Extractor = (*Extractor)(nil)

// TitleSelectors locate the problem name, in priority order.
var TitleSelectors = []string{
	`a[href*="/problems/"]`,
	".text-title-large",
	"h1",
	`[data-cy="question-title"]`,
	".question-title",
}

// LanguageSelectors locate the language picker shown next to the code,
// in priority order.
var LanguageSelectors = []string{
	`[class*="lang"]`,
	"[data-language]",
	`select[name*="lang"]`,
	`[class*="language"]`,
	".language-label",
}

// Extractor runs the extraction pipeline: detect the page, collect and
// select code, clean and validate it, then resolve language and name.
type Extractor struct {
	// Logger receives debug output and advisory warnings. Nil disables logging.
	Logger *slog.Logger

	collector *Collector
}

// NewExtractor creates a new Extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{
		Logger:    logger,
		collector: NewCollector(logger),
	}
}

// Extract builds a submission from a rendered page. Each call reads only
// the page it is given.
func (e *Extractor) Extract(page *leetdoc.Page) (*leetdoc.Submission, error) {
	log := loggerOrDiscard(e.Logger)

	path := leetdoc.LocationPath(page.URL)
	if !leetdoc.IsSubmissionPath(path) {
		return nil, leetdoc.Errorf(leetdoc.ENOTSUBMISSION,
			"not on a LeetCode submission page: navigate to a submission page and try again")
	}

	id, err := leetdoc.SubmissionID(path)
	if err != nil {
		return nil, err
	}

	var title string
	if page.Root != nil {
		title = findTitle(page.Root)
	}
	if title == "" {
		return nil, leetdoc.Errorf(leetdoc.ENONAME,
			"could not find problem name: make sure the page has loaded completely")
	}

	code, tag, err := e.extractCode(page.Root)
	if err != nil {
		return nil, err
	}

	check := leetdoc.CheckCode(code)
	if !check.HasCodePattern {
		log.Warn("no common code patterns found in extracted code", "id", id)
	}
	if !check.Valid {
		return nil, leetdoc.Errorf(leetdoc.EBADCODE,
			"extracted code appears to be invalid or corrupted: %s", check.Reason)
	}

	language := resolveLanguage(page.Root, tag, code)

	log.Debug("extracted submission", "id", id, "tag", tag, "language", language, "length", len(code))

	return &leetdoc.Submission{
		Name:           leetdoc.NormalizeTitle(title),
		Code:           code,
		Language:       language,
		SubmissionLink: leetdoc.SubmissionLink(id),
	}, nil
}

// extractCode returns the cleaned code and the declared language tag of the
// selected candidate. When no candidate yields code, the fallback sweep
// supplies already-cleaned code.
func (e *Extractor) extractCode(root leetdoc.Node) (string, string, error) {
	collector := e.collector
	if collector == nil {
		collector = NewCollector(e.Logger)
	}

	var code, tag string
	if candidates := collector.Collect(root); len(candidates) > 0 {
		selected := leetdoc.SelectCandidate(candidates)
		code = leetdoc.StripLineNumbers(selected.Text)
		tag = selected.LanguageTag
	}

	if strings.TrimSpace(code) == "" {
		fallback, ok := collector.Fallback(root)
		if !ok {
			return "", "", leetdoc.Errorf(leetdoc.ENOCODE,
				"could not extract code from this page: make sure the submission has loaded completely")
		}
		code = fallback
	}

	return code, tag, nil
}

// resolveLanguage prefers the declared tag, then the language picker shown
// on the page, then a guess from the code itself.
func resolveLanguage(root leetdoc.Node, tag, code string) string {
	if tag != "" {
		return leetdoc.MapLanguage(tag)
	}
	if label, ok := scrapeLanguage(root); ok {
		return label
	}
	return leetdoc.SniffLanguage(code)
}

func scrapeLanguage(root leetdoc.Node) (string, bool) {
	for _, selector := range LanguageSelectors {
		node := root.First(selector)
		if node == nil {
			continue
		}

		text := node.Text()
		if text == "" {
			text, _ = node.Attr("data-language")
		}
		if text == "" {
			text, _ = node.Attr("value")
		}

		if leetdoc.IsPlausibleLanguage(text) {
			return strings.TrimSpace(text), true
		}
	}
	return "", false
}

func findTitle(root leetdoc.Node) string {
	for _, selector := range TitleSelectors {
		node := root.First(selector)
		if node == nil {
			continue
		}
		if text := strings.TrimSpace(node.Text()); text != "" {
			return text
		}
	}
	return ""
}
