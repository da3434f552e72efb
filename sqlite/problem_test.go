package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/leetdoc"
	"github.com/fwojciec/leetdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProblem(n int) *leetdoc.Problem {
	return &leetdoc.Problem{
		Name:           fmt.Sprintf("Problem %d", n),
		Code:           fmt.Sprintf("def solve():\n    return %d", n),
		Language:       "Python3",
		SubmissionLink: fmt.Sprintf("https://leetcode.com/submissions/detail/%d/", n),
	}
}

func createProblems(t *testing.T, svc *sqlite.ProblemService, n int) []*leetdoc.Problem {
	t.Helper()

	problems := make([]*leetdoc.Problem, 0, n)
	for i := 1; i <= n; i++ {
		p := newProblem(i)
		require.NoError(t, svc.CreateProblem(context.Background(), p))
		problems = append(problems, p)
	}
	return problems
}

func names(problems []*leetdoc.Problem) []string {
	out := make([]string, 0, len(problems))
	for _, p := range problems {
		out = append(out, p.Name)
	}
	return out
}

func TestProblemService_CreateProblem(t *testing.T) {
	t.Parallel()

	t.Run("creates problem with generated ID, hash and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)

		p := newProblem(1)
		err := svc.CreateProblem(context.Background(), p)
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.Len(t, p.CodeHash, 16)
		assert.False(t, p.CreatedAt.IsZero())
		assert.False(t, p.UpdatedAt.IsZero())
	})

	t.Run("appends at the end of the order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)

		problems := createProblems(t, svc, 3)

		assert.Equal(t, 0, problems[0].Position)
		assert.Equal(t, 1, problems[1].Position)
		assert.Equal(t, 2, problems[2].Position)
	})

	t.Run("identical code produces identical hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)

		a := newProblem(1)
		b := newProblem(2)
		b.Code = a.Code
		require.NoError(t, svc.CreateProblem(context.Background(), a))
		require.NoError(t, svc.CreateProblem(context.Background(), b))

		assert.Equal(t, a.CodeHash, b.CodeHash)
	})

	t.Run("returns error for invalid problem", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)

		err := svc.CreateProblem(context.Background(), &leetdoc.Problem{})
		require.Error(t, err)
		assert.Equal(t, leetdoc.EINVALID, leetdoc.ErrorCode(err))
	})
}

func TestProblemService_FindProblemByID(t *testing.T) {
	t.Parallel()

	t.Run("returns problem when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 1)[0]

		found, err := svc.FindProblemByID(context.Background(), created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.Name, found.Name)
		assert.Equal(t, created.Code, found.Code)
		assert.Equal(t, created.Language, found.Language)
		assert.Equal(t, created.SubmissionLink, found.SubmissionLink)
		assert.Equal(t, created.CodeHash, found.CodeHash)
		assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("returns ENOTFOUND for missing problem", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)

		_, err := svc.FindProblemByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, leetdoc.ENOTFOUND, leetdoc.ErrorCode(err))
	})
}

func TestProblemService_FindProblems(t *testing.T) {
	t.Parallel()

	t.Run("returns problems in order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		createProblems(t, svc, 3)

		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{})
		require.NoError(t, err)

		assert.Equal(t, []string{"Problem 1", "Problem 2", "Problem 3"}, names(problems))
	})

	t.Run("filters by submission link", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 3)

		link := created[1].SubmissionLink
		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{SubmissionLink: &link})
		require.NoError(t, err)

		require.Len(t, problems, 1)
		assert.Equal(t, created[1].ID, problems[0].ID)
	})

	t.Run("filters by code hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 2)

		hash := created[0].CodeHash
		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{CodeHash: &hash})
		require.NoError(t, err)

		require.Len(t, problems, 1)
		assert.Equal(t, created[0].ID, problems[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		createProblems(t, svc, 4)

		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"Problem 2", "Problem 3"}, names(problems))

		problems, err = svc.FindProblems(context.Background(), leetdoc.ProblemFilter{Offset: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"Problem 4"}, names(problems))
	})

	t.Run("combines link and hash filters", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 3)

		link := created[1].SubmissionLink
		hash := created[1].CodeHash
		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{SubmissionLink: &link, CodeHash: &hash})
		require.NoError(t, err)
		assert.Equal(t, []string{"Problem 2"}, names(problems))

		other := created[0].CodeHash
		problems, err = svc.FindProblems(context.Background(), leetdoc.ProblemFilter{SubmissionLink: &link, CodeHash: &other})
		require.NoError(t, err)
		assert.Empty(t, problems)
	})

	t.Run("reports a corrupt timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 1)

		_, err := db.ExecContext(context.Background(), "UPDATE problems SET created_at = 'yesterday' WHERE id = ?", created[0].ID)
		require.NoError(t, err)

		_, err = svc.FindProblems(context.Background(), leetdoc.ProblemFilter{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "created_at")
	})
}

func TestProblemService_UpdateProblem(t *testing.T) {
	t.Parallel()

	t.Run("updates fields and recomputes hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 1)[0]

		name := "Renamed"
		code := "class Solution:\n    pass"
		updated, err := svc.UpdateProblem(context.Background(), created.ID, leetdoc.ProblemUpdate{
			Name: &name,
			Code: &code,
		})
		require.NoError(t, err)

		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, code, updated.Code)
		assert.NotEqual(t, created.CodeHash, updated.CodeHash)

		found, err := svc.FindProblemByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name)
		assert.Equal(t, updated.CodeHash, found.CodeHash)
	})

	t.Run("rejects invalid update", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 1)[0]

		link := "https://example.com/submissions/detail/1/"
		_, err := svc.UpdateProblem(context.Background(), created.ID, leetdoc.ProblemUpdate{SubmissionLink: &link})
		require.Error(t, err)
		assert.Equal(t, leetdoc.EINVALID, leetdoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing problem", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)

		_, err := svc.UpdateProblem(context.Background(), "missing", leetdoc.ProblemUpdate{})
		require.Error(t, err)
		assert.Equal(t, leetdoc.ENOTFOUND, leetdoc.ErrorCode(err))
	})
}

func TestProblemService_MoveProblem(t *testing.T) {
	t.Parallel()

	t.Run("moves problem up", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 3)

		require.NoError(t, svc.MoveProblem(context.Background(), created[2].ID, leetdoc.DirectionUp))

		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Problem 1", "Problem 3", "Problem 2"}, names(problems))
	})

	t.Run("moves problem down", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 3)

		require.NoError(t, svc.MoveProblem(context.Background(), created[0].ID, leetdoc.DirectionDown))

		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Problem 2", "Problem 1", "Problem 3"}, names(problems))
	})

	t.Run("ignores moves past either end", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 2)

		require.NoError(t, svc.MoveProblem(context.Background(), created[0].ID, leetdoc.DirectionUp))
		require.NoError(t, svc.MoveProblem(context.Background(), created[1].ID, leetdoc.DirectionDown))

		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Problem 1", "Problem 2"}, names(problems))
	})

	t.Run("skips gaps left by deletes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 3)
		require.NoError(t, svc.DeleteProblem(context.Background(), created[1].ID))

		require.NoError(t, svc.MoveProblem(context.Background(), created[2].ID, leetdoc.DirectionUp))

		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Problem 3", "Problem 1"}, names(problems))
	})

	t.Run("rejects unknown direction", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 1)

		err := svc.MoveProblem(context.Background(), created[0].ID, leetdoc.Direction("left"))
		require.Error(t, err)
		assert.Equal(t, leetdoc.EINVALID, leetdoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing problem", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)

		err := svc.MoveProblem(context.Background(), "missing", leetdoc.DirectionUp)
		require.Error(t, err)
		assert.Equal(t, leetdoc.ENOTFOUND, leetdoc.ErrorCode(err))
	})
}

func TestProblemService_ReorderProblems(t *testing.T) {
	t.Parallel()

	t.Run("applies explicit order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 3)

		err := svc.ReorderProblems(context.Background(), []string{created[2].ID, created[0].ID, created[1].ID})
		require.NoError(t, err)

		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Problem 3", "Problem 1", "Problem 2"}, names(problems))
	})

	t.Run("rejects incomplete list", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 2)

		err := svc.ReorderProblems(context.Background(), []string{created[0].ID})
		require.Error(t, err)
		assert.Equal(t, leetdoc.EINVALID, leetdoc.ErrorCode(err))
	})

	t.Run("rejects repeated ID and leaves order unchanged", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 2)

		err := svc.ReorderProblems(context.Background(), []string{created[1].ID, created[1].ID})
		require.Error(t, err)
		assert.Equal(t, leetdoc.EINVALID, leetdoc.ErrorCode(err))

		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Problem 1", "Problem 2"}, names(problems))
	})

	t.Run("rejects unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 2)

		err := svc.ReorderProblems(context.Background(), []string{created[0].ID, "missing"})
		require.Error(t, err)
		assert.Equal(t, leetdoc.ENOTFOUND, leetdoc.ErrorCode(err))
	})
}

func TestProblemService_DeleteProblem(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing problem", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		created := createProblems(t, svc, 1)[0]

		require.NoError(t, svc.DeleteProblem(context.Background(), created.ID))

		_, err := svc.FindProblemByID(context.Background(), created.ID)
		assert.Equal(t, leetdoc.ENOTFOUND, leetdoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing problem", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)

		err := svc.DeleteProblem(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, leetdoc.ENOTFOUND, leetdoc.ErrorCode(err))
	})

	t.Run("deletes all problems", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProblemService(db)
		createProblems(t, svc, 3)

		require.NoError(t, svc.DeleteAllProblems(context.Background()))

		problems, err := svc.FindProblems(context.Background(), leetdoc.ProblemFilter{})
		require.NoError(t, err)
		assert.Empty(t, problems)

		p := newProblem(9)
		require.NoError(t, svc.CreateProblem(context.Background(), p))
		assert.Equal(t, 0, p.Position)
	})
}
