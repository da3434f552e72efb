package capture

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashCode computes the xxhash of code as 16 hex digits, matching the hash
// the sqlite store records for each problem.
func HashCode(code string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(code))
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
