package leetdoc

import (
	"regexp"
	"strings"
)

var titlePrefix = regexp.MustCompile(`^\s*\d+\.\s*(.+)$`)

// NormalizeTitle strips a leading problem-number prefix such as "1. " from a
// title. Titles without the prefix are returned trimmed.
func NormalizeTitle(raw string) string {
	if m := titlePrefix.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}
