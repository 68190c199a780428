package profileinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/recruitment/profile"
)

type PostgresJobRepository struct {
	db *sqlx.DB
}

func NewPostgresJobRepository(db *sqlx.DB) profile.JobRepository {
	return &PostgresJobRepository{db: db}
}

// dbJob is the database model with proper JSON handling
type dbJob struct {
	ID          string `db:"id"`
	CandidateID string `db:"candidate_id"`

	Status      string `db:"status"`
	FilePath    string `db:"file_path"`
	FileName    string `db:"file_name"`
	ContentType string `db:"content_type"`

	AttemptCount int `db:"attempt_count"`
	MaxAttempts  int `db:"max_attempts"`

	ErrorMessage string         `db:"error_message"`
	ErrorDetails sql.NullString `db:"error_details"`

	CurrentStep *string `db:"current_step"`

	CreatedAt   time.Time  `db:"created_at"`
	StartedAt   *time.Time `db:"started_at"`
	CompletedAt *time.Time `db:"completed_at"`
	FailedAt    *time.Time `db:"failed_at"`
	NextRetryAt *time.Time `db:"next_retry_at"`
}

func (r *PostgresJobRepository) Create(ctx context.Context, job *profile.ParseResumeJob) error {
	query := `
		INSERT INTO resume_parse_jobs (
			id, candidate_id, status, file_path, file_name, content_type,
			attempt_count, max_attempts, error_message, error_details, current_step,
			created_at, started_at, completed_at, failed_at, next_retry_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16
		)`

	row, err := toDBJob(job)
	if err != nil {
		return fmt.Errorf("convert to db job: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		row.ID, row.CandidateID, row.Status, row.FilePath, row.FileName, row.ContentType,
		row.AttemptCount, row.MaxAttempts, row.ErrorMessage, row.ErrorDetails, row.CurrentStep,
		row.CreatedAt, row.StartedAt, row.CompletedAt, row.FailedAt, row.NextRetryAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("job already exists: %w", err)
		}
		return fmt.Errorf("create job: %w", err)
	}

	return nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, job *profile.ParseResumeJob) error {
	query := `
		UPDATE resume_parse_jobs SET
			status = $2, attempt_count = $3, error_message = $4, error_details = $5,
			current_step = $6, started_at = $7, completed_at = $8, failed_at = $9,
			next_retry_at = $10
		WHERE id = $1`

	row, err := toDBJob(job)
	if err != nil {
		return fmt.Errorf("convert to db job: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		row.ID, row.Status, row.AttemptCount, row.ErrorMessage, row.ErrorDetails,
		row.CurrentStep, row.StartedAt, row.CompletedAt, row.FailedAt, row.NextRetryAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID kernel.ParseJobID) (*profile.ParseResumeJob, error) {
	query := `
		SELECT id, candidate_id, status, file_path, file_name, content_type,
			attempt_count, max_attempts, error_message, error_details, current_step,
			created_at, started_at, completed_at, failed_at, next_retry_at
		FROM resume_parse_jobs
		WHERE id = $1`

	var row dbJob
	if err := r.db.GetContext(ctx, &row, query, jobID.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profile.ErrJobNotFound().WithDetail("job_id", jobID)
		}
		return nil, fmt.Errorf("get job: %w", err)
	}

	return fromDBJob(&row)
}

func (r *PostgresJobRepository) ListByCandidateID(ctx context.Context, id kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[profile.ParseResumeJob], error) {
	pagination = pagination.Normalize()

	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM resume_parse_jobs WHERE candidate_id = $1`, id.String())
	if err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}

	query := `
		SELECT id, candidate_id, status, file_path, file_name, content_type,
			attempt_count, max_attempts, error_message, error_details, current_step,
			created_at, started_at, completed_at, failed_at, next_retry_at
		FROM resume_parse_jobs
		WHERE candidate_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var rows []dbJob
	if err := r.db.SelectContext(ctx, &rows, query, id.String(), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := make([]profile.ParseResumeJob, 0, len(rows))
	for i := range rows {
		job, err := fromDBJob(&rows[i])
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}

	paginated := kernel.NewPaginated(jobs, pagination.Page, pagination.PageSize, total)
	return &paginated, nil
}

func (r *PostgresJobRepository) MarkAsProcessing(ctx context.Context, jobID kernel.ParseJobID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE resume_parse_jobs SET status = $2, started_at = $3 WHERE id = $1`,
		jobID.String(), profile.JobStatusProcessing, time.Now())
	if err != nil {
		return fmt.Errorf("mark job processing: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) MarkAsCompleted(ctx context.Context, jobID kernel.ParseJobID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE resume_parse_jobs SET status = $2, completed_at = $3, current_step = NULL WHERE id = $1`,
		jobID.String(), profile.JobStatusCompleted, time.Now())
	if err != nil {
		return fmt.Errorf("mark job completed: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) MarkAsFailed(ctx context.Context, jobID kernel.ParseJobID, errorMsg string, errorDetails map[string]any) error {
	details, err := json.Marshal(errorDetails)
	if err != nil {
		details = []byte("{}")
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE resume_parse_jobs SET status = $2, failed_at = $3, error_message = $4, error_details = $5 WHERE id = $1`,
		jobID.String(), profile.JobStatusFailed, time.Now(), errorMsg, string(details))
	if err != nil {
		return fmt.Errorf("mark job failed: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) UpdateStep(ctx context.Context, jobID kernel.ParseJobID, step profile.ProcessingStep) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE resume_parse_jobs SET current_step = $2 WHERE id = $1`,
		jobID.String(), string(step))
	if err != nil {
		return fmt.Errorf("update job step: %w", err)
	}
	return nil
}

func toDBJob(job *profile.ParseResumeJob) (*dbJob, error) {
	row := &dbJob{
		ID:           job.ID.String(),
		CandidateID:  job.CandidateID.String(),
		Status:       string(job.Status),
		FilePath:     job.FilePath,
		FileName:     job.FileName,
		ContentType:  job.ContentType,
		AttemptCount: job.AttemptCount,
		MaxAttempts:  job.MaxAttempts,
		ErrorMessage: job.ErrorMessage,
		CreatedAt:    job.CreatedAt,
		StartedAt:    job.StartedAt,
		CompletedAt:  job.CompletedAt,
		FailedAt:     job.FailedAt,
		NextRetryAt:  job.NextRetryAt,
	}

	if job.ErrorDetails != nil {
		details, err := json.Marshal(job.ErrorDetails)
		if err != nil {
			return nil, fmt.Errorf("marshal error details: %w", err)
		}
		row.ErrorDetails = sql.NullString{String: string(details), Valid: true}
	}

	if job.CurrentStep != nil {
		step := string(*job.CurrentStep)
		row.CurrentStep = &step
	}

	return row, nil
}

func fromDBJob(row *dbJob) (*profile.ParseResumeJob, error) {
	job := &profile.ParseResumeJob{
		ID:           kernel.NewParseJobID(row.ID),
		CandidateID:  kernel.NewCandidateID(row.CandidateID),
		Status:       profile.JobStatus(row.Status),
		FilePath:     row.FilePath,
		FileName:     row.FileName,
		ContentType:  row.ContentType,
		AttemptCount: row.AttemptCount,
		MaxAttempts:  row.MaxAttempts,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
		FailedAt:     row.FailedAt,
		NextRetryAt:  row.NextRetryAt,
	}

	if row.ErrorDetails.Valid && row.ErrorDetails.String != "" {
		if err := json.Unmarshal([]byte(row.ErrorDetails.String), &job.ErrorDetails); err != nil {
			return nil, fmt.Errorf("unmarshal error details: %w", err)
		}
	}

	if row.CurrentStep != nil {
		step := profile.ProcessingStep(*row.CurrentStep)
		job.CurrentStep = &step
	}

	return job, nil
}
