package candidateinfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/recruitment/candidate"
)

const candidateColumns = `
	id, email, phone, first_name, last_name,
	status, archived_at, created_at, updated_at
`

type PostgresCandidateRepository struct {
	db *sqlx.DB
}

func NewPostgresCandidateRepository(db *sqlx.DB) candidate.Repository {
	return &PostgresCandidateRepository{db: db}
}

// Create creates a new candidate
func (r *PostgresCandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	query := `
		INSERT INTO candidates (
			id, email, phone, first_name, last_name,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		c.ID,
		c.Email,
		c.Phone,
		c.FirstName,
		c.LastName,
		c.Status,
		c.CreatedAt,
		c.UpdatedAt,
	)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return candidate.ErrCandidateAlreadyExists().WithDetail("email", string(c.Email))
	}

	return err
}

// Update updates an existing candidate
func (r *PostgresCandidateRepository) Update(ctx context.Context, id kernel.CandidateID, c *candidate.Candidate) error {
	query := `
		UPDATE candidates
		SET
			email = $2,
			phone = $3,
			first_name = $4,
			last_name = $5,
			status = $6,
			archived_at = $7,
			updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		id,
		c.Email,
		c.Phone,
		c.FirstName,
		c.LastName,
		c.Status,
		c.ArchivedAt,
		c.UpdatedAt,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// GetByID retrieves a candidate by ID
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE id = $1`, candidateColumns)

	var c candidate.Candidate
	err := r.db.GetContext(ctx, &c, query, id)
	if err == sql.ErrNoRows {
		return nil, candidate.ErrCandidateNotFound()
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Delete deletes a candidate by ID
func (r *PostgresCandidateRepository) Delete(ctx context.Context, id kernel.CandidateID) error {
	query := `DELETE FROM candidates WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// List retrieves all candidates with pagination
func (r *PostgresCandidateRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	pagination = pagination.Normalize()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM candidates`); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM candidates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, candidateColumns)

	candidates := make([]candidate.Candidate, 0)
	if err := r.db.SelectContext(ctx, &candidates, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, err
	}

	result := kernel.NewPaginated(candidates, pagination.Page, pagination.PageSize, total)
	return &result, nil
}

// Search searches candidates by various criteria
func (r *PostgresCandidateRepository) Search(ctx context.Context, req candidate.SearchCandidatesRequest) (*kernel.Paginated[candidate.Candidate], error) {
	pagination := req.Pagination.Normalize()

	// Build WHERE clause dynamically
	whereClauses := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Query != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`(
			first_name ILIKE $%d OR
			last_name ILIKE $%d OR
			email ILIKE $%d
		)`, argCount, argCount, argCount))
		args = append(args, "%"+req.Query+"%")
		argCount++
	}

	if req.Email != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`email ILIKE $%d`, argCount))
		args = append(args, "%"+req.Email+"%")
		argCount++
	}

	if req.Phone != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`phone ILIKE $%d`, argCount))
		args = append(args, "%"+req.Phone+"%")
		argCount++
	}

	if req.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(`status = $%d`, argCount))
		args = append(args, req.Status)
		argCount++
	}

	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	// Count total
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM candidates %s`, whereSQL)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, err
	}

	// Fetch candidates
	query := fmt.Sprintf(`
		SELECT %s
		FROM candidates
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, candidateColumns, whereSQL, argCount, argCount+1)

	args = append(args, pagination.PageSize, pagination.Offset())

	candidates := make([]candidate.Candidate, 0)
	if err := r.db.SelectContext(ctx, &candidates, query, args...); err != nil {
		return nil, err
	}

	result := kernel.NewPaginated(candidates, pagination.Page, pagination.PageSize, total)
	return &result, nil
}

// GetByEmail retrieves a candidate by email
func (r *PostgresCandidateRepository) GetByEmail(ctx context.Context, email kernel.Email) (*candidate.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE email = $1`, candidateColumns)

	var c candidate.Candidate
	err := r.db.GetContext(ctx, &c, query, email)
	if err == sql.ErrNoRows {
		return nil, candidate.ErrCandidateNotFound()
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Exists checks if a candidate exists by ID
func (r *PostgresCandidateRepository) Exists(ctx context.Context, id kernel.CandidateID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

// CountApplications counts applications for a candidate
func (r *PostgresCandidateRepository) CountApplications(ctx context.Context, candidateID kernel.CandidateID) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE candidate_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, candidateID)
	return count, err
}

// LastApplicationAt returns the time of the candidate's latest application
func (r *PostgresCandidateRepository) LastApplicationAt(ctx context.Context, candidateID kernel.CandidateID) (*time.Time, error) {
	query := `SELECT MAX(applied_at) FROM applications WHERE candidate_id = $1`

	var last sql.NullTime
	if err := r.db.GetContext(ctx, &last, query, candidateID); err != nil {
		return nil, err
	}

	if !last.Valid {
		return nil, nil
	}
	return &last.Time, nil
}

// ListArchived retrieves archived candidates with pagination
func (r *PostgresCandidateRepository) ListArchived(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	pagination = pagination.Normalize()

	var total int
	countQuery := `SELECT COUNT(*) FROM candidates WHERE status = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, candidate.CandidateStatusArchived); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM candidates
		WHERE status = $1
		ORDER BY archived_at DESC
		LIMIT $2 OFFSET $3
	`, candidateColumns)

	candidates := make([]candidate.Candidate, 0)
	if err := r.db.SelectContext(ctx, &candidates, query, candidate.CandidateStatusArchived, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, err
	}

	result := kernel.NewPaginated(candidates, pagination.Page, pagination.PageSize, total)
	return &result, nil
}
