package leetdoc

import (
	"regexp"
	"strings"
)

// lineRule rewrites a single line that carries a synthetic line-number
// prefix. Rules are evaluated in order and the first matching pattern wins.
// rewrite returns the replacement line and whether it should be kept.
type lineRule struct {
	name    string
	pattern *regexp.Regexp
	rewrite func(m []string) (string, bool)
}

// lineRules lists the line-number encodings produced by code renderers,
// in priority order.
var lineRules = []lineRule{
	{
		name:    "bare",
		pattern: regexp.MustCompile(`^\s*\d+\s*$`),
		rewrite: func([]string) (string, bool) {
			return "", false
		},
	},
	{
		// The renderer separates the number from the code with one space,
		// followed by the code's own indentation.
		name:    "spaces",
		pattern: regexp.MustCompile(`^(\s*)\d+( +)(.*)$`),
		rewrite: func(m []string) (string, bool) {
			lead, gap, rest := m[1], m[2], m[3]
			if isBlank(rest) {
				return "", false
			}
			indent := ""
			if len(gap) > 1 {
				indent = gap[1:]
			}
			return lead + indent + rest, true
		},
	},
	{
		// Spaces after the dot are the original indentation.
		name:    "dot",
		pattern: regexp.MustCompile(`^(\s*)\d+\.(\s*)(.*)$`),
		rewrite: keepSeparatorGap,
	},
	{
		name:    "attached",
		pattern: regexp.MustCompile(`^(\s*)\d+([A-Za-z_${}().\[\]].*)$`),
		rewrite: func(m []string) (string, bool) {
			return m[1] + m[2], true
		},
	},
	{
		name:    "pipe",
		pattern: regexp.MustCompile(`^(\s*)\d+\|(\s*)(.*)$`),
		rewrite: keepSeparatorGap,
	},
	{
		name:    "colon",
		pattern: regexp.MustCompile(`^(\s*)\d+:(\s*)(.*)$`),
		rewrite: keepSeparatorGap,
	},
	{
		name:    "tab",
		pattern: regexp.MustCompile(`^(\s*)\d+\t+(.*)$`),
		rewrite: func(m []string) (string, bool) {
			if isBlank(m[2]) {
				return "", false
			}
			return m[1] + m[2], true
		},
	},
}

// keepSeparatorGap rebuilds a line as leading whitespace, the whitespace
// following the separator, and the remaining text.
func keepSeparatorGap(m []string) (string, bool) {
	lead, gap, rest := m[1], m[2], m[3]
	if isBlank(rest) {
		return "", false
	}
	return lead + gap + rest, true
}

// StripLineNumbers removes synthetic line-number prefixes from code while
// preserving the code's own indentation. Lines that consist of nothing but
// a number are dropped. Whitespace-only lines are kept verbatim. Lines that
// match no known encoding are kept unchanged.
func StripLineNumbers(code string) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isBlank(line) {
			out = append(out, line)
			continue
		}
		rewritten, keep := stripLine(line)
		if keep {
			out = append(out, rewritten)
		}
	}
	return strings.Join(out, "\n")
}

// stripLine applies the first matching rule to a non-blank line.
func stripLine(line string) (string, bool) {
	for _, rule := range lineRules {
		m := rule.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return rule.rewrite(m)
	}
	return line, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
