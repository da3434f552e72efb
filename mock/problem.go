package mock

import (
	"context"

	"github.com/fwojciec/leetdoc"
)

var _ leetdoc.ProblemService = (*ProblemService)(nil)

// ProblemService is a mock implementation of leetdoc.ProblemService.
type ProblemService struct {
	CreateProblemFn     func(ctx context.Context, problem *leetdoc.Problem) error
	FindProblemByIDFn   func(ctx context.Context, id string) (*leetdoc.Problem, error)
	FindProblemsFn      func(ctx context.Context, filter leetdoc.ProblemFilter) ([]*leetdoc.Problem, error)
	UpdateProblemFn     func(ctx context.Context, id string, upd leetdoc.ProblemUpdate) (*leetdoc.Problem, error)
	MoveProblemFn       func(ctx context.Context, id string, dir leetdoc.Direction) error
	ReorderProblemsFn   func(ctx context.Context, ids []string) error
	DeleteProblemFn     func(ctx context.Context, id string) error
	DeleteAllProblemsFn func(ctx context.Context) error
}

func (s *ProblemService) CreateProblem(ctx context.Context, problem *leetdoc.Problem) error {
	return s.CreateProblemFn(ctx, problem)
}

func (s *ProblemService) FindProblemByID(ctx context.Context, id string) (*leetdoc.Problem, error) {
	return s.FindProblemByIDFn(ctx, id)
}

func (s *ProblemService) FindProblems(ctx context.Context, filter leetdoc.ProblemFilter) ([]*leetdoc.Problem, error) {
	return s.FindProblemsFn(ctx, filter)
}

func (s *ProblemService) UpdateProblem(ctx context.Context, id string, upd leetdoc.ProblemUpdate) (*leetdoc.Problem, error) {
	return s.UpdateProblemFn(ctx, id, upd)
}

func (s *ProblemService) MoveProblem(ctx context.Context, id string, dir leetdoc.Direction) error {
	return s.MoveProblemFn(ctx, id, dir)
}

func (s *ProblemService) ReorderProblems(ctx context.Context, ids []string) error {
	return s.ReorderProblemsFn(ctx, ids)
}

func (s *ProblemService) DeleteProblem(ctx context.Context, id string) error {
	return s.DeleteProblemFn(ctx, id)
}

func (s *ProblemService) DeleteAllProblems(ctx context.Context) error {
	return s.DeleteAllProblemsFn(ctx)
}
