package leetdoc

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Limits on stored submission fields.
const (
	MaxNameLength = 300
	MaxCodeLength = 100000
)

// Submission is the result of extracting a submission page.
type Submission struct {
	Name           string `json:"name"`
	Code           string `json:"code"`
	Language       string `json:"language"`
	SubmissionLink string `json:"submissionLink"`
}

// Validate returns an error if the submission contains invalid fields.
func (s *Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return Errorf(EINVALID, "problem name is required and cannot be empty")
	}
	if utf8.RuneCountInString(s.Name) > MaxNameLength {
		return Errorf(EINVALID, "problem name is too long (maximum %d characters)", MaxNameLength)
	}
	if strings.TrimSpace(s.SubmissionLink) == "" {
		return Errorf(EINVALID, "submission link is required and cannot be empty")
	}
	u, err := url.Parse(s.SubmissionLink)
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return Errorf(EINVALID, "submission link is not a valid URL")
	}
	if !strings.Contains(u.Hostname(), "leetcode.com") {
		return Errorf(EINVALID, "submission link must be from leetcode.com")
	}
	if strings.TrimSpace(s.Code) == "" {
		return Errorf(EINVALID, "code is required and cannot be empty")
	}
	if utf8.RuneCountInString(s.Code) > MaxCodeLength {
		return Errorf(EINVALID, "code is too long (maximum %d characters)", MaxCodeLength)
	}
	if strings.TrimSpace(s.Language) == "" {
		return Errorf(EINVALID, "programming language is required and cannot be empty")
	}
	return nil
}
