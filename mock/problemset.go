package mock

import (
	"context"

	"github.com/fwojciec/leetdoc"
)

var _ leetdoc.ProblemSetService = (*ProblemSetService)(nil)

// ProblemSetService is a mock implementation of leetdoc.ProblemSetService.
type ProblemSetService struct {
	FindProblemSetFn   func(ctx context.Context) (*leetdoc.ProblemSet, error)
	SaveProblemSetFn   func(ctx context.Context, set *leetdoc.ProblemSet) error
	DeleteProblemSetFn func(ctx context.Context) error
}

func (s *ProblemSetService) FindProblemSet(ctx context.Context) (*leetdoc.ProblemSet, error) {
	return s.FindProblemSetFn(ctx)
}

func (s *ProblemSetService) SaveProblemSet(ctx context.Context, set *leetdoc.ProblemSet) error {
	return s.SaveProblemSetFn(ctx, set)
}

func (s *ProblemSetService) DeleteProblemSet(ctx context.Context) error {
	return s.DeleteProblemSetFn(ctx)
}
