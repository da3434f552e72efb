package leetdoc

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

// SubmissionLinkFormat is the canonical link to a submission detail page.
const SubmissionLinkFormat = "https://leetcode.com/submissions/detail/%s/"

// submissionPaths are the page shapes that show a single submission:
//
//	/problems/{slug}/submissions/{id}/
//	/submissions/detail/{id}/
var submissionPaths = []*regexp.Regexp{
	regexp.MustCompile(`/problems/[^/]+/submissions/\d+`),
	regexp.MustCompile(`/submissions/detail/\d+`),
}

var submissionIDPattern = regexp.MustCompile(`/submissions/(?:detail/)?(\d+)`)

// LocationPath returns the path component of a page location, which may be
// an absolute URL or a bare path.
func LocationPath(location string) string {
	u, err := url.Parse(location)
	if err != nil {
		return location
	}
	return u.Path
}

// IsSubmissionPath reports whether path has one of the submission page shapes.
func IsSubmissionPath(path string) bool {
	for _, re := range submissionPaths {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// SubmissionID returns the numeric submission identifier from a path.
// Returns ENOID if no identifier can be parsed.
func SubmissionID(path string) (string, error) {
	m := submissionIDPattern.FindStringSubmatch(path)
	if m == nil {
		return "", Errorf(ENOID, "could not extract submission ID from URL: make sure you are on a submission detail page")
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return "", Errorf(ENOID, "submission ID %q is not a valid identifier: make sure you are on a submission detail page", m[1])
	}
	return strconv.FormatUint(id, 10), nil
}

// SubmissionLink returns the canonical absolute link for a submission ID.
func SubmissionLink(id string) string {
	return fmt.Sprintf(SubmissionLinkFormat, id)
}
