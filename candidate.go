package leetdoc

import "strings"

// DefaultLanguageTag is the platform's sandbox language. Submission pages
// often render a boilerplate stub in this language next to the submitted
// code, so candidates carrying it are deprioritized.
const DefaultLanguageTag = "go"

// Candidate is a code block found on a page and considered for selection as
// the submitted code.
type Candidate struct {
	// Text is the trimmed text of the block. Never blank.
	Text string

	// LanguageTag is the lower-cased tag declared by the block, possibly empty.
	LanguageTag string
}

// NewCandidate returns a candidate for text and tag. The second result is
// false when text is blank, in which case no candidate should be recorded.
func NewCandidate(text, tag string) (Candidate, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Candidate{}, false
	}
	return Candidate{Text: text, LanguageTag: strings.ToLower(tag)}, true
}

// SelectCandidate picks the candidate most likely to hold the submitted
// code. A single candidate is returned as is. With several, the first one
// not tagged DefaultLanguageTag wins; if all carry that tag, the first wins.
//
// This misselects when the submission itself is written in the default
// language and a stub in another language is also present.
//
// SelectCandidate panics if candidates is empty.
func SelectCandidate(candidates []Candidate) Candidate {
	if len(candidates) == 1 {
		return candidates[0]
	}
	for _, c := range candidates {
		if c.LanguageTag != DefaultLanguageTag {
			return c
		}
	}
	return candidates[0]
}
