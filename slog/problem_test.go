package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/leetdoc"
	"github.com/fwojciec/leetdoc/mock"
	leetslog "github.com/fwojciec/leetdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProblemService(t *testing.T) {
	t.Parallel()

	t.Run("logs created problem", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := leetslog.NewLoggingProblemService(&mock.ProblemService{
			CreateProblemFn: func(_ context.Context, p *leetdoc.Problem) error {
				p.ID = "abc"
				p.Position = 2
				return nil
			},
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		err := svc.CreateProblem(context.Background(), &leetdoc.Problem{Name: "Two Sum"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, `msg="create problem"`)
		assert.Contains(t, output, "id=abc")
		assert.Contains(t, output, "position=2")
	})

	t.Run("logs move direction and error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := leetslog.NewLoggingProblemService(&mock.ProblemService{
			MoveProblemFn: func(context.Context, string, leetdoc.Direction) error {
				return leetdoc.Errorf(leetdoc.ENOTFOUND, "problem not found")
			},
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		err := svc.MoveProblem(context.Background(), "abc", leetdoc.DirectionUp)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "direction=up")
		assert.Contains(t, output, "problem not found")
	})

	t.Run("delegates reads without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		svc := leetslog.NewLoggingProblemService(&mock.ProblemService{
			FindProblemsFn: func(context.Context, leetdoc.ProblemFilter) ([]*leetdoc.Problem, error) {
				return []*leetdoc.Problem{{Name: "Two Sum"}}, nil
			},
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{})

		require.NoError(t, err)
		assert.Len(t, problems, 1)
		assert.Empty(t, buf.String())
	})
}
