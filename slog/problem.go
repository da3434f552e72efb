package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/leetdoc"
)

// Ensure LoggingProblemService implements leetdoc.ProblemService.
var _ leetdoc.ProblemService = (*LoggingProblemService)(nil)

// LoggingProblemService wraps a ProblemService with logging of changes.
// Reads are delegated without logging.
type LoggingProblemService struct {
	next   leetdoc.ProblemService
	logger *slog.Logger
}

// NewLoggingProblemService creates a new LoggingProblemService.
func NewLoggingProblemService(next leetdoc.ProblemService, logger *slog.Logger) *LoggingProblemService {
	return &LoggingProblemService{next: next, logger: logger}
}

func (s *LoggingProblemService) CreateProblem(ctx context.Context, problem *leetdoc.Problem) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create problem",
			"id", problem.ID,
			"name", problem.Name,
			"position", problem.Position,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateProblem(ctx, problem)
}

func (s *LoggingProblemService) FindProblemByID(ctx context.Context, id string) (*leetdoc.Problem, error) {
	return s.next.FindProblemByID(ctx, id)
}

func (s *LoggingProblemService) FindProblems(ctx context.Context, filter leetdoc.ProblemFilter) ([]*leetdoc.Problem, error) {
	return s.next.FindProblems(ctx, filter)
}

func (s *LoggingProblemService) UpdateProblem(ctx context.Context, id string, upd leetdoc.ProblemUpdate) (problem *leetdoc.Problem, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update problem",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateProblem(ctx, id, upd)
}

func (s *LoggingProblemService) MoveProblem(ctx context.Context, id string, dir leetdoc.Direction) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("move problem",
			"id", id,
			"direction", string(dir),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.MoveProblem(ctx, id, dir)
}

func (s *LoggingProblemService) ReorderProblems(ctx context.Context, ids []string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("reorder problems",
			"count", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReorderProblems(ctx, ids)
}

func (s *LoggingProblemService) DeleteProblem(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete problem",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteProblem(ctx, id)
}

func (s *LoggingProblemService) DeleteAllProblems(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete all problems",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteAllProblems(ctx)
}
