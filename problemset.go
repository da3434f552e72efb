package leetdoc

import (
	"context"
	"strings"
	"unicode/utf8"
)

// ProblemSet holds the metadata printed at the top of the generated document.
type ProblemSet struct {
	Title       string `json:"title" yaml:"title"`
	SubmittedBy string `json:"submittedBy" yaml:"submittedBy"`
}

// Validate returns an error if the problem set contains invalid fields.
func (s *ProblemSet) Validate() error {
	if s.Title == "" || s.SubmittedBy == "" {
		return Errorf(EINVALID, "please fill in both problem set title and student name")
	}
	if utf8.RuneCountInString(s.Title) < 2 {
		return Errorf(EINVALID, "problem set title must be at least 2 characters long")
	}
	if utf8.RuneCountInString(s.SubmittedBy) < 2 {
		return Errorf(EINVALID, "student name must be at least 2 characters long")
	}
	if utf8.RuneCountInString(s.Title) > 200 {
		return Errorf(EINVALID, "problem set title is too long (maximum 200 characters)")
	}
	if utf8.RuneCountInString(s.SubmittedBy) > 100 {
		return Errorf(EINVALID, "student name is too long (maximum 100 characters)")
	}
	return nil
}

var filenameReplacer = strings.NewReplacer(
	"<", "", ">", "", ":", "", `"`, "", "/", "",
	`\`, "", "|", "", "?", "", "*", "",
)

// Filename returns the document file name "{SubmittedBy} - {Title}.{ext}"
// with characters that are invalid in file names removed.
func (s *ProblemSet) Filename(ext string) string {
	return filenameReplacer.Replace(s.SubmittedBy + " - " + s.Title + "." + ext)
}

// ProblemSetService represents a service for managing the problem set metadata.
type ProblemSetService interface {
	// FindProblemSet returns the current problem set.
	// Returns ENOTFOUND if no problem set has been saved.
	FindProblemSet(ctx context.Context) (*ProblemSet, error)

	// SaveProblemSet validates and stores the problem set, replacing any
	// previous one.
	SaveProblemSet(ctx context.Context, set *ProblemSet) error

	// DeleteProblemSet removes the problem set metadata and all problems.
	DeleteProblemSet(ctx context.Context) error
}
