package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/leetdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ leetdoc.ProblemService = (*ProblemService)(nil)

const problemColumns = "id, name, code, language, submission_link, code_hash, position, created_at, updated_at"

// ProblemService implements leetdoc.ProblemService using SQLite.
type ProblemService struct {
	db *DB
}

// NewProblemService creates a new ProblemService.
func NewProblemService(db *DB) *ProblemService {
	return &ProblemService{db: db}
}

// hashCode computes xxHash of code and returns hex string.
func hashCode(code string) string {
	h := xxhash.Sum64String(code)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateProblem stores a new problem after the last one in the order.
func (s *ProblemService) CreateProblem(ctx context.Context, problem *leetdoc.Problem) error {
	if err := problem.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var position int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position) + 1, 0) FROM problems").Scan(&position); err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Second)
	problem.ID = uuid.New().String()
	problem.CodeHash = hashCode(problem.Code)
	problem.Position = position
	problem.CreatedAt = now
	problem.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
		INSERT INTO problems (`+problemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, problem.ID, problem.Name, problem.Code, problem.Language, problem.SubmissionLink,
		problem.CodeHash, problem.Position, now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return err
	}

	return tx.Commit()
}

// FindProblemByID retrieves a problem by ID.
func (s *ProblemService) FindProblemByID(ctx context.Context, id string) (*leetdoc.Problem, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+problemColumns+" FROM problems WHERE id = ?", id)

	problem, err := scanProblem(row)
	if err == sql.ErrNoRows {
		return nil, leetdoc.Errorf(leetdoc.ENOTFOUND, "problem not found")
	}
	if err != nil {
		return nil, err
	}
	return problem, nil
}

// FindProblems retrieves problems matching the filter, ordered by position.
func (s *ProblemService) FindProblems(ctx context.Context, filter leetdoc.ProblemFilter) ([]*leetdoc.Problem, error) {
	query, args := problemQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var problems []*leetdoc.Problem
	for rows.Next() {
		problem, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		problems = append(problems, problem)
	}

	return problems, rows.Err()
}

// UpdateProblem updates an existing problem.
func (s *ProblemService) UpdateProblem(ctx context.Context, id string, upd leetdoc.ProblemUpdate) (*leetdoc.Problem, error) {
	problem, err := s.FindProblemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		problem.Name = *upd.Name
	}
	if upd.Code != nil {
		problem.Code = *upd.Code
		problem.CodeHash = hashCode(problem.Code)
	}
	if upd.Language != nil {
		problem.Language = *upd.Language
	}
	if upd.SubmissionLink != nil {
		problem.SubmissionLink = *upd.SubmissionLink
	}

	if err := problem.Validate(); err != nil {
		return nil, err
	}

	problem.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE problems
		SET name = ?, code = ?, language = ?, submission_link = ?, code_hash = ?, updated_at = ?
		WHERE id = ?
	`, problem.Name, problem.Code, problem.Language, problem.SubmissionLink, problem.CodeHash,
		problem.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return problem, nil
}

// MoveProblem swaps a problem with its neighbor in the given direction.
func (s *ProblemService) MoveProblem(ctx context.Context, id string, dir leetdoc.Direction) error {
	var neighborQuery string
	switch dir {
	case leetdoc.DirectionUp:
		neighborQuery = "SELECT id, position FROM problems WHERE position < ? ORDER BY position DESC LIMIT 1"
	case leetdoc.DirectionDown:
		neighborQuery = "SELECT id, position FROM problems WHERE position > ? ORDER BY position ASC LIMIT 1"
	default:
		return leetdoc.Errorf(leetdoc.EINVALID, "direction must be %q or %q", leetdoc.DirectionUp, leetdoc.DirectionDown)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRowContext(ctx, "SELECT position FROM problems WHERE id = ?", id).Scan(&position)
	if err == sql.ErrNoRows {
		return leetdoc.Errorf(leetdoc.ENOTFOUND, "problem not found")
	}
	if err != nil {
		return err
	}

	var neighborID string
	var neighborPosition int
	err = tx.QueryRowContext(ctx, neighborQuery, position).Scan(&neighborID, &neighborPosition)
	if err == sql.ErrNoRows {
		// Already at the edge.
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "UPDATE problems SET position = ? WHERE id = ?", neighborPosition, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "UPDATE problems SET position = ? WHERE id = ?", position, neighborID); err != nil {
		return err
	}

	return tx.Commit()
}

// ReorderProblems assigns positions following the order of ids.
func (s *ProblemService) ReorderProblems(ctx context.Context, ids []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM problems").Scan(&count); err != nil {
		return err
	}
	if len(ids) != count {
		return leetdoc.Errorf(leetdoc.EINVALID, "reorder must list all %d problems, got %d", count, len(ids))
	}

	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if seen[id] {
			return leetdoc.Errorf(leetdoc.EINVALID, "problem %s listed more than once", id)
		}
		seen[id] = true

		result, err := tx.ExecContext(ctx, "UPDATE problems SET position = ? WHERE id = ?", i, id)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return leetdoc.Errorf(leetdoc.ENOTFOUND, "problem %s not found", id)
		}
	}

	return tx.Commit()
}

// DeleteProblem permanently removes a problem.
func (s *ProblemService) DeleteProblem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM problems WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return leetdoc.Errorf(leetdoc.ENOTFOUND, "problem not found")
	}

	return nil
}

// DeleteAllProblems removes every problem.
func (s *ProblemService) DeleteAllProblems(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM problems")
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProblem(row scanner) (*leetdoc.Problem, error) {
	var problem leetdoc.Problem
	var createdAt, updatedAt timestamp

	if err := row.Scan(&problem.ID, &problem.Name, &problem.Code, &problem.Language,
		&problem.SubmissionLink, &problem.CodeHash, &problem.Position, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	problem.CreatedAt = createdAt.Time
	problem.UpdatedAt = updatedAt.Time

	return &problem, nil
}

// problemQuery renders a filter as a SELECT in set order. Lookups by
// submission link and code hash back duplicate detection during capture.
func problemQuery(filter leetdoc.ProblemFilter) (string, []any) {
	var where []string
	var args []any

	if filter.ID != nil {
		where = append(where, "id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SubmissionLink != nil {
		where = append(where, "submission_link = ?")
		args = append(args, *filter.SubmissionLink)
	}
	if filter.CodeHash != nil {
		where = append(where, "code_hash = ?")
		args = append(args, *filter.CodeHash)
	}

	var query strings.Builder
	query.WriteString("SELECT " + problemColumns + " FROM problems")
	if len(where) > 0 {
		query.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	query.WriteString(" ORDER BY position ASC, created_at ASC")

	switch {
	case filter.Limit > 0:
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	case filter.Offset > 0:
		// SQLite only accepts OFFSET after a LIMIT clause.
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	return query.String(), args
}

// timestamp scans an RFC3339 TEXT column.
type timestamp struct {
	time.Time
}

func (t *timestamp) Scan(src any) error {
	var text string
	switch v := src.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("unexpected timestamp type %T", src)
	}

	parsed, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
