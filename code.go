package leetdoc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Plausibility thresholds for extracted code.
const (
	// MinCodeLength is the minimum trimmed length of plausible code.
	MinCodeLength = 10

	// MinLetterRatio is the minimum share of ASCII letters in plausible code.
	MinLetterRatio = 0.10
)

// codePatterns are keywords and punctuation common to most languages.
// A match is a diagnostic signal only; it never decides validity.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)function`),
	regexp.MustCompile(`(?i)class`),
	regexp.MustCompile(`(?i)def `),
	regexp.MustCompile(`(?i)public`),
	regexp.MustCompile(`(?i)private`),
	regexp.MustCompile(`(?i)return`),
	regexp.MustCompile(`if\s*\(`),
	regexp.MustCompile(`for\s*\(`),
	regexp.MustCompile(`while\s*\(`),
	regexp.MustCompile(`(?s)\{.*\}`),
	regexp.MustCompile(`(?s)\[.*\]`),
	regexp.MustCompile(`(?i)import`),
	regexp.MustCompile(`(?i)include`),
	regexp.MustCompile(`(?i)package`),
	regexp.MustCompile(`var `),
	regexp.MustCompile(`let `),
	regexp.MustCompile(`const `),
	regexp.MustCompile(`=>`),
	regexp.MustCompile(`\(\s*\)`),
	regexp.MustCompile(`int `),
	regexp.MustCompile(`void `),
	regexp.MustCompile(`string `),
	regexp.MustCompile(`bool `),
	regexp.MustCompile(`vector`),
	regexp.MustCompile(`(?i)array`),
	regexp.MustCompile(`(?i)list`),
	regexp.MustCompile(`(?i)map`),
	regexp.MustCompile(`(?i)set`),
}

// CodeCheck is the outcome of checking text for plausibility as source code.
type CodeCheck struct {
	// Valid reports whether the text passed the length and letter checks.
	Valid bool

	// Reason explains a failed check. Empty when Valid is true.
	Reason string

	// HasCodePattern reports whether any common keyword or punctuation
	// pattern matched. Advisory only.
	HasCodePattern bool

	// LetterRatio is the share of ASCII letters over the whole text.
	LetterRatio float64
}

// CheckCode scores text as plausible source code. Only the trimmed length
// and the letter ratio can reject text; the keyword signal is reported in
// HasCodePattern for callers to log.
func CheckCode(text string) CodeCheck {
	if text == "" {
		return CodeCheck{Reason: "code is empty"}
	}

	check := CodeCheck{HasCodePattern: hasCodePattern(text)}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinCodeLength {
		check.Reason = "code is too short"
		return check
	}

	check.LetterRatio = letterRatio(text)
	if check.LetterRatio < MinLetterRatio {
		check.Reason = "letter ratio too low"
		return check
	}

	check.Valid = true
	return check
}

// IsPlausibleCode reports whether text passes CheckCode.
func IsPlausibleCode(text string) bool {
	return CheckCode(text).Valid
}

func hasCodePattern(text string) bool {
	for _, re := range codePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// letterRatio returns the share of ASCII letters among all runes of s.
func letterRatio(s string) float64 {
	total := utf8.RuneCountInString(s)
	if total == 0 {
		return 0
	}
	return float64(countASCIILetters(s)) / float64(total)
}

func countASCIILetters(s string) int {
	n := 0
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			n++
		}
	}
	return n
}
