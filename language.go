package leetdoc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// UnknownLanguage is reported when no language can be determined.
const UnknownLanguage = "Unknown"

// MaxLanguageLength is the longest plausible language label scraped from a page.
const MaxLanguageLength = 30

// languageNames maps platform language tags to display names.
var languageNames = map[string]string{
	"cpp":        "C++",
	"python":     "Python",
	"python3":    "Python3",
	"java":       "Java",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"c":          "C",
	"csharp":     "C#",
	"go":         "Go",
	"rust":       "Rust",
	"kotlin":     "Kotlin",
	"swift":      "Swift",
	"ruby":       "Ruby",
	"scala":      "Scala",
	"php":        "PHP",
	"mysql":      "MySQL",
	"mssql":      "MS SQL Server",
	"oraclesql":  "Oracle SQL",
}

// MapLanguage returns the display name for a language tag.
// Unrecognized tags are returned unchanged; an empty tag maps to UnknownLanguage.
func MapLanguage(tag string) string {
	if name, ok := languageNames[tag]; ok {
		return name
	}
	if tag == "" {
		return UnknownLanguage
	}
	return tag
}

// sniffRule associates a language with content patterns characteristic of it.
type sniffRule struct {
	language string
	pattern  *regexp.Regexp
}

// sniffRules are checked in order; the first match wins. A leading ^
// anchors to the start of the code, not to each line.
var sniffRules = []sniffRule{
	{"C++", regexp.MustCompile(`^#include|using namespace std|cout|cin`)},
	{"Python", regexp.MustCompile(`^def |^class.*:|^import `)},
	{"Java", regexp.MustCompile(`^public class|^import java\.`)},
	{"JavaScript", regexp.MustCompile(`^function |^const |^let |^var |=>`)},
	{"Rust", regexp.MustCompile(`^fn |^impl |^use `)},
	{"Go", regexp.MustCompile(`^func |^package main`)},
	{"C#", regexp.MustCompile(`^using System|^namespace `)},
}

// SniffLanguage infers a language from code content.
// Returns UnknownLanguage when no rule matches.
func SniffLanguage(code string) string {
	if code == "" {
		return UnknownLanguage
	}
	for _, rule := range sniffRules {
		if rule.pattern.MatchString(code) {
			return rule.language
		}
	}
	return UnknownLanguage
}

// IsPlausibleLanguage reports whether text scraped from a page element looks
// like a language label: short, single-line, and mostly letters.
func IsPlausibleLanguage(text string) bool {
	if text == "" {
		return false
	}
	n := utf8.RuneCountInString(text)
	if n > MaxLanguageLength {
		return false
	}
	if strings.ContainsAny(text, "\n\r\t") {
		return false
	}
	return float64(countASCIILetters(text)) > float64(n)*0.5
}
