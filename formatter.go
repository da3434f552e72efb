package leetdoc

import (
	"fmt"
	"strings"
)

// FormatProblems formats problems for terminal display.
// Each problem shows its position, name, language, and link, followed by
// its code when full is true. Problems are separated by blank lines.
func FormatProblems(problems []*Problem, full bool) string {
	if len(problems) == 0 {
		return ""
	}

	parts := make([]string, 0, len(problems))
	for i, p := range problems {
		header := fmt.Sprintf("%d. %s (%s)\n   %s", i+1, p.Name, p.Language, p.SubmissionLink)
		if full {
			header += "\n\n" + p.Code
		}
		parts = append(parts, header)
	}

	return strings.Join(parts, "\n\n")
}
