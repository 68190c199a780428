package applicationinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/recruitment/application"
	"github.com/talentgate/talentgate/recruitment/matching"
)

const applicationColumns = `
	id, job_id, candidate_id, cover_letter, ats_score, match_details,
	status, reviewer_id, status_changed_at, archived_at, applied_at, updated_at
`

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) application.Repository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID              string          `db:"id"`
	JobID           string          `db:"job_id"`
	CandidateID     string          `db:"candidate_id"`
	CoverLetter     string          `db:"cover_letter"`
	ATSScore        int             `db:"ats_score"`
	MatchDetails    []byte          `db:"match_details"`
	Status          string          `db:"status"`
	ReviewerID      *string         `db:"reviewer_id"`
	StatusChangedAt *time.Time      `db:"status_changed_at"`
	ArchivedAt      *time.Time      `db:"archived_at"`
	AppliedAt       time.Time       `db:"applied_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// rankedApplicationModel for joined recruiter queries
type rankedApplicationModel struct {
	applicationModel
	CandidateEmail string `db:"candidate_email"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() (*application.Application, error) {
	var reviewerID *kernel.UserID
	if m.ReviewerID != nil {
		id := kernel.UserID(*m.ReviewerID)
		reviewerID = &id
	}

	var details *matching.MatchResult
	if len(m.MatchDetails) > 0 {
		var result matching.MatchResult
		if err := json.Unmarshal(m.MatchDetails, &result); err != nil {
			return nil, fmt.Errorf("unmarshal match details for application %s: %w", m.ID, err)
		}
		details = &result
	}

	return &application.Application{
		ID:              kernel.ApplicationID(m.ID),
		JobID:           kernel.JobID(m.JobID),
		CandidateID:     kernel.CandidateID(m.CandidateID),
		CoverLetter:     m.CoverLetter,
		ATSScore:        m.ATSScore,
		MatchDetails:    details,
		Status:          application.ApplicationStatus(m.Status),
		ReviewerID:      reviewerID,
		StatusChangedAt: m.StatusChangedAt,
		ArchivedAt:      m.ArchivedAt,
		AppliedAt:       m.AppliedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(a *application.Application) (*applicationModel, error) {
	var reviewerID *string
	if a.ReviewerID != nil {
		id := a.ReviewerID.String()
		reviewerID = &id
	}

	var details []byte
	if a.MatchDetails != nil {
		data, err := json.Marshal(a.MatchDetails)
		if err != nil {
			return nil, fmt.Errorf("marshal match details for application %s: %w", a.ID, err)
		}
		details = data
	}

	return &applicationModel{
		ID:              a.ID.String(),
		JobID:           a.JobID.String(),
		CandidateID:     a.CandidateID.String(),
		CoverLetter:     a.CoverLetter,
		ATSScore:        a.ATSScore,
		MatchDetails:    details,
		Status:          string(a.Status),
		ReviewerID:      reviewerID,
		StatusChangedAt: a.StatusChangedAt,
		ArchivedAt:      a.ArchivedAt,
		AppliedAt:       a.AppliedAt,
		UpdatedAt:       a.UpdatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	model, err := fromEntity(a)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO applications (
			id, job_id, candidate_id, cover_letter, ats_score, match_details,
			status, reviewer_id, status_changed_at, archived_at, applied_at, updated_at
		) VALUES (
			:id, :job_id, :candidate_id, :cover_letter, :ats_score, :match_details,
			:status, :reviewer_id, :status_changed_at, :archived_at, :applied_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return application.ErrApplicationAlreadyExists().
			WithDetail("job_id", a.JobID.String()).
			WithDetail("candidate_id", a.CandidateID.String())
	}

	return err
}

// Update updates an existing application
func (r *PostgresApplicationRepository) Update(ctx context.Context, id kernel.ApplicationID, a *application.Application) error {
	model, err := fromEntity(a)
	if err != nil {
		return err
	}
	model.ID = id.String()

	query := `
		UPDATE applications
		SET
			cover_letter = :cover_letter,
			ats_score = :ats_score,
			match_details = :match_details,
			status = :status,
			reviewer_id = :reviewer_id,
			status_changed_at = :status_changed_at,
			archived_at = :archived_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, applicationColumns)

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, id)
	if err == sql.ErrNoRows {
		return nil, application.ErrApplicationNotFound()
	}
	if err != nil {
		return nil, err
	}

	return model.toEntity()
}

// Delete deletes an application by ID
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// List retrieves all applications with pagination
func (r *PostgresApplicationRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	pagination = pagination.Normalize()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM applications`); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications
		ORDER BY applied_at DESC
		LIMIT $1 OFFSET $2
	`, applicationColumns)

	return r.selectPage(ctx, query, pagination, total, pagination.PageSize, pagination.Offset())
}

// ListByJobID retrieves applications for a job, ranked by match score
func (r *PostgresApplicationRepository) ListByJobID(ctx context.Context, req application.ListApplicationsByJobRequest) (*kernel.Paginated[application.Application], error) {
	pagination := req.Pagination.Normalize()

	where := `WHERE job_id = $1`
	args := []interface{}{req.JobID}
	if req.Status != "" {
		where += ` AND status = $2`
		args = append(args, req.Status)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM applications %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications
		%s
		ORDER BY ats_score DESC, applied_at ASC
		LIMIT $%d OFFSET $%d
	`, applicationColumns, where, len(args)+1, len(args)+2)

	args = append(args, pagination.PageSize, pagination.Offset())

	return r.selectPage(ctx, query, pagination, total, args...)
}

// ListByCandidateID retrieves applications for a specific candidate
func (r *PostgresApplicationRepository) ListByCandidateID(ctx context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	pagination = pagination.Normalize()

	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE candidate_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, candidateID); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications
		WHERE candidate_id = $1
		ORDER BY applied_at DESC
		LIMIT $2 OFFSET $3
	`, applicationColumns)

	return r.selectPage(ctx, query, pagination, total, candidateID, pagination.PageSize, pagination.Offset())
}

// ListRankedByJobID retrieves ranked applications joined with candidate details
func (r *PostgresApplicationRepository) ListRankedByJobID(ctx context.Context, req application.ListApplicationsByJobRequest) (*kernel.Paginated[application.RankedApplicationResponse], error) {
	pagination := req.Pagination.Normalize()

	where := `WHERE a.job_id = $1`
	args := []interface{}{req.JobID}
	if req.Status != "" {
		where += ` AND a.status = $2`
		args = append(args, req.Status)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM applications a %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			a.id, a.job_id, a.candidate_id, a.cover_letter, a.ats_score, a.match_details,
			a.status, a.reviewer_id, a.status_changed_at, a.archived_at, a.applied_at, a.updated_at,
			c.email AS candidate_email, c.first_name, c.last_name
		FROM applications a
		JOIN candidates c ON c.id = a.candidate_id
		%s
		ORDER BY a.ats_score DESC, a.applied_at ASC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	args = append(args, pagination.PageSize, pagination.Offset())

	var models []rankedApplicationModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, err
	}

	ranked := make([]application.RankedApplicationResponse, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, application.RankedApplicationResponse{
			Application:    application.ToApplicationResponse(entity),
			CandidateName:  fmt.Sprintf("%s %s", models[i].FirstName, models[i].LastName),
			CandidateEmail: kernel.Email(models[i].CandidateEmail),
		})
	}

	result := kernel.NewPaginated(ranked, pagination.Page, pagination.PageSize, total)
	return &result, nil
}

// ListByReviewer retrieves applications assigned to a reviewer
func (r *PostgresApplicationRepository) ListByReviewer(ctx context.Context, reviewerID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	pagination = pagination.Normalize()

	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE reviewer_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, reviewerID); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications
		WHERE reviewer_id = $1
		ORDER BY applied_at DESC
		LIMIT $2 OFFSET $3
	`, applicationColumns)

	return r.selectPage(ctx, query, pagination, total, reviewerID, pagination.PageSize, pagination.Offset())
}

// Exists checks if an application exists by ID
func (r *PostgresApplicationRepository) Exists(ctx context.Context, id kernel.ApplicationID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM applications WHERE id = $1)`, id)
	return exists, err
}

// ExistsByJobAndCandidate checks if an application exists for a job and candidate
func (r *PostgresApplicationRepository) ExistsByJobAndCandidate(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, jobID, candidateID)
	return exists, err
}

// CountByJobID counts applications for a specific job
func (r *PostgresApplicationRepository) CountByJobID(ctx context.Context, jobID kernel.JobID) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID)
	return count, err
}

// CountByCandidateID counts applications for a specific candidate
func (r *PostgresApplicationRepository) CountByCandidateID(ctx context.Context, candidateID kernel.CandidateID) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM applications WHERE candidate_id = $1`, candidateID)
	return count, err
}

// ============================================================================
// Helpers
// ============================================================================

func (r *PostgresApplicationRepository) selectPage(ctx context.Context, query string, pagination kernel.PaginationOptions, total int, args ...interface{}) (*kernel.Paginated[application.Application], error) {
	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, err
	}

	applications := make([]application.Application, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		applications = append(applications, *entity)
	}

	result := kernel.NewPaginated(applications, pagination.Page, pagination.PageSize, total)
	return &result, nil
}
