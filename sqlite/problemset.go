package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/leetdoc"
)

// Compile-time interface verification.
var _ leetdoc.ProblemSetService = (*ProblemSetService)(nil)

// ProblemSetService implements leetdoc.ProblemSetService using SQLite.
// The problem set is stored as a single row.
type ProblemSetService struct {
	db *DB
}

// NewProblemSetService creates a new ProblemSetService.
func NewProblemSetService(db *DB) *ProblemSetService {
	return &ProblemSetService{db: db}
}

// FindProblemSet returns the stored problem set.
func (s *ProblemSetService) FindProblemSet(ctx context.Context) (*leetdoc.ProblemSet, error) {
	var set leetdoc.ProblemSet

	err := s.db.QueryRowContext(ctx, `
		SELECT title, submitted_by
		FROM problem_sets
		WHERE id = 1
	`).Scan(&set.Title, &set.SubmittedBy)

	if err == sql.ErrNoRows {
		return nil, leetdoc.Errorf(leetdoc.ENOTFOUND, "problem set info not saved: run 'leetdoc info --title TITLE --by NAME'")
	}
	if err != nil {
		return nil, err
	}

	return &set, nil
}

// SaveProblemSet validates and stores the problem set.
func (s *ProblemSetService) SaveProblemSet(ctx context.Context, set *leetdoc.ProblemSet) error {
	if err := set.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO problem_sets (id, title, submitted_by, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			submitted_by = excluded.submitted_by,
			updated_at = excluded.updated_at
	`, set.Title, set.SubmittedBy, time.Now().UTC().Format(time.RFC3339))

	return err
}

// DeleteProblemSet removes the problem set and every problem in it.
func (s *ProblemSetService) DeleteProblemSet(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM problems"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM problem_sets"); err != nil {
		return err
	}

	return tx.Commit()
}
