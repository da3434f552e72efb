package leetdoc

import (
	"context"
	"time"
)

// Problem is a captured submission stored in the current problem set.
type Problem struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	Language       string    `json:"language"`
	SubmissionLink string    `json:"submissionLink"`
	CodeHash       string    `json:"codeHash"`
	Position       int       `json:"position"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewProblem returns an unsaved problem holding the fields of a submission.
func NewProblem(s *Submission) *Problem {
	return &Problem{
		Name:           s.Name,
		Code:           s.Code,
		Language:       s.Language,
		SubmissionLink: s.SubmissionLink,
	}
}

// Submission returns the extracted fields of the problem.
func (p *Problem) Submission() *Submission {
	return &Submission{
		Name:           p.Name,
		Code:           p.Code,
		Language:       p.Language,
		SubmissionLink: p.SubmissionLink,
	}
}

// Validate returns an error if the problem contains invalid fields.
func (p *Problem) Validate() error {
	return p.Submission().Validate()
}

// Direction is the direction of a single-step move within the problem order.
type Direction string

// Direction constants for MoveProblem.
const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ProblemService represents a service for managing the problems of the
// current problem set. Problems are kept in an explicit order.
type ProblemService interface {
	// CreateProblem stores a new problem at the end of the order.
	CreateProblem(ctx context.Context, problem *Problem) error

	// FindProblemByID retrieves a problem by ID.
	// Returns ENOTFOUND if problem does not exist.
	FindProblemByID(ctx context.Context, id string) (*Problem, error)

	// FindProblems retrieves problems matching the filter in order.
	FindProblems(ctx context.Context, filter ProblemFilter) ([]*Problem, error)

	// UpdateProblem updates an existing problem.
	// Returns ENOTFOUND if problem does not exist.
	UpdateProblem(ctx context.Context, id string, upd ProblemUpdate) (*Problem, error)

	// MoveProblem swaps a problem with its neighbor in the given direction.
	// Moving past either end is a no-op.
	// Returns ENOTFOUND if problem does not exist.
	MoveProblem(ctx context.Context, id string, dir Direction) error

	// ReorderProblems sets the order to the given list of IDs, which must
	// name every stored problem exactly once.
	ReorderProblems(ctx context.Context, ids []string) error

	// DeleteProblem permanently removes a problem.
	// Returns ENOTFOUND if problem does not exist.
	DeleteProblem(ctx context.Context, id string) error

	// DeleteAllProblems removes every problem.
	DeleteAllProblems(ctx context.Context) error
}

// ProblemFilter represents a filter for FindProblems.
type ProblemFilter struct {
	ID             *string `json:"id"`
	SubmissionLink *string `json:"submissionLink"`
	CodeHash       *string `json:"codeHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ProblemUpdate represents fields that can be updated on a problem.
type ProblemUpdate struct {
	Name           *string `json:"name"`
	Code           *string `json:"code"`
	Language       *string `json:"language"`
	SubmissionLink *string `json:"submissionLink"`
}
