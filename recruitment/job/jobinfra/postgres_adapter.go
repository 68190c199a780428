package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"

	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/recruitment/job"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

const jobColumns = `
	id, job_title, job_description, job_position,
	requirements, skills, experience, benefits, posted_by, status,
	published_at, archived_at, created_at, updated_at`

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID             string          `db:"id"`
	JobTitle       string          `db:"job_title"`
	JobDescription string          `db:"job_description"`
	JobPosition    string          `db:"job_position"`
	Requirements   json.RawMessage `db:"requirements"`
	Skills         json.RawMessage `db:"skills"`
	Experience     json.RawMessage `db:"experience"`
	Benefits       json.RawMessage `db:"benefits"`
	PostedBy       string          `db:"posted_by"`
	Status         string          `db:"status"`
	PublishedAt    *time.Time      `db:"published_at"`
	ArchivedAt     *time.Time      `db:"archived_at"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type recommendedJobModel struct {
	jobModel
	Similarity float64 `db:"similarity"`
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() (*job.Job, error) {
	var requirements []kernel.JobRequirement
	if len(m.Requirements) > 0 {
		if err := json.Unmarshal(m.Requirements, &requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
		}
	}

	var skills []job.JobSkill
	if len(m.Skills) > 0 {
		if err := json.Unmarshal(m.Skills, &skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
		}
	}

	var experience job.ExperienceRange
	if len(m.Experience) > 0 {
		if err := json.Unmarshal(m.Experience, &experience); err != nil {
			return nil, fmt.Errorf("failed to unmarshal experience: %w", err)
		}
	}

	var benefits []kernel.JobBenefit
	if len(m.Benefits) > 0 {
		if err := json.Unmarshal(m.Benefits, &benefits); err != nil {
			return nil, fmt.Errorf("failed to unmarshal benefits: %w", err)
		}
	}

	j := &job.Job{
		ID:           kernel.JobID(m.ID),
		Title:        kernel.JobTitle(m.JobTitle),
		Description:  kernel.JobDescription(m.JobDescription),
		Position:     kernel.JobPosition(m.JobPosition),
		Requirements: requirements,
		Skills:       skills,
		Experience:   experience,
		Benefits:     benefits,
		PostedBy:     kernel.UserID(m.PostedBy),
		Status:       job.JobStatus(m.Status),
		PublishedAt:  m.PublishedAt,
		ArchivedAt:   m.ArchivedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	j.Normalize()
	return j, nil
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) (*jobModel, error) {
	requirements, err := json.Marshal(j.Requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}

	skills, err := json.Marshal(j.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	experience, err := json.Marshal(j.Experience)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal experience: %w", err)
	}

	benefits, err := json.Marshal(j.Benefits)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal benefits: %w", err)
	}

	return &jobModel{
		ID:             j.ID.String(),
		JobTitle:       string(j.Title),
		JobDescription: string(j.Description),
		JobPosition:    string(j.Position),
		Requirements:   requirements,
		Skills:         skills,
		Experience:     experience,
		Benefits:       benefits,
		PostedBy:       j.PostedBy.String(),
		Status:         string(j.Status),
		PublishedAt:    j.PublishedAt,
		ArchivedAt:     j.ArchivedAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}, nil
}

// ============================================================================
// CRUD Operations
// ============================================================================

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (
			id, job_title, job_description, job_position,
			requirements, skills, experience, benefits, posted_by, status,
			published_at, archived_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14
		)`

	_, err = r.db.ExecContext(ctx, query,
		model.ID, model.JobTitle, model.JobDescription, model.JobPosition,
		model.Requirements, model.Skills, model.Experience, model.Benefits,
		model.PostedBy, model.Status,
		model.PublishedAt, model.ArchivedAt, model.CreatedAt, model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// Update updates an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}

	query := `
		UPDATE jobs SET
			job_title = $2, job_description = $3, job_position = $4,
			requirements = $5, skills = $6, experience = $7, benefits = $8,
			status = $9, published_at = $10, archived_at = $11, updated_at = $12
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		id.String(), model.JobTitle, model.JobDescription, model.JobPosition,
		model.Requirements, model.Skills, model.Experience, model.Benefits,
		model.Status, model.PublishedAt, model.ArchivedAt, model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", id.String())
	}
	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns)

	var model jobModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return model.toEntity()
}

// Delete deletes a job by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", id.String())
	}
	return nil
}

// List retrieves all jobs with pagination
func (r *PostgresJobRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.paginatedList(ctx, "", nil, pagination)
}

// ListByUserID retrieves jobs posted by a specific user
func (r *PostgresJobRepository) ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.paginatedList(ctx, "WHERE posted_by = $1", []any{userID.String()}, pagination)
}

// ListPublished retrieves only published jobs
func (r *PostgresJobRepository) ListPublished(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return r.paginatedList(ctx, "WHERE status = $1", []any{string(job.JobStatusPublished)}, pagination)
}

// Search searches jobs by various criteria
func (r *PostgresJobRepository) Search(ctx context.Context, req job.SearchJobsRequest) (*kernel.Paginated[job.Job], error) {
	whereConditions := []string{}
	args := []any{}
	argCount := 1

	if req.Query != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("(job_title ILIKE $%d OR job_description ILIKE $%d OR job_position ILIKE $%d)", argCount, argCount, argCount))
		args = append(args, "%"+req.Query+"%")
		argCount++
	}

	if req.Title != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("job_title ILIKE $%d", argCount))
		args = append(args, "%"+req.Title+"%")
		argCount++
	}

	if req.Position != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("job_position ILIKE $%d", argCount))
		args = append(args, "%"+req.Position+"%")
		argCount++
	}

	if req.PostedBy != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("posted_by = $%d", argCount))
		args = append(args, req.PostedBy)
		argCount++
	}

	if req.Skill != "" {
		// skills is a JSONB array of {name, required, weight}
		whereConditions = append(whereConditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM jsonb_array_elements(skills) AS s
			WHERE s->>'name' ILIKE $%d
		)`, argCount))
		args = append(args, "%"+req.Skill+"%")
		argCount++
	}

	if req.OnlyPublished {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, string(job.JobStatusPublished))
		argCount++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + whereConditions[0]
		for i := 1; i < len(whereConditions); i++ {
			whereClause += " AND " + whereConditions[i]
		}
	}

	return r.paginatedList(ctx, whereClause, args, req.Pagination)
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}
	return exists, nil
}

// CountByUserID counts the number of jobs posted by a user
func (r *PostgresJobRepository) CountByUserID(ctx context.Context, userID kernel.UserID) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM jobs WHERE posted_by = $1`, userID.String())
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs by user: %w", err)
	}
	return count, nil
}

// CountApplications counts applications received by a job
func (r *PostgresJobRepository) CountApplications(ctx context.Context, jobID kernel.JobID) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID.String())
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// ============================================================================
// Embeddings & Recommendations (pgvector)
// ============================================================================

// UpdateEmbedding updates only the embedding vector for a job
func (r *PostgresJobRepository) UpdateEmbedding(ctx context.Context, id kernel.JobID, embedding kernel.JobEmbedding) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE jobs SET embedding = $1, updated_at = $2 WHERE id = $3`,
		pgvector.NewVector(embedding), time.Now(), id.String())
	if err != nil {
		return fmt.Errorf("failed to update job embedding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", id.String())
	}
	return nil
}

// RecommendByEmbedding returns published jobs ranked by cosine similarity to
// the given profile embedding.
func (r *PostgresJobRepository) RecommendByEmbedding(ctx context.Context, embedding kernel.ProfileEmbedding, limit int) ([]job.RecommendedJob, error) {
	query := fmt.Sprintf(`
		SELECT %s, 1 - (embedding <=> $1) AS similarity
		FROM jobs
		WHERE status = $2 AND embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $3`, jobColumns)

	var models []recommendedJobModel
	err := r.db.SelectContext(ctx, &models, query,
		pgvector.NewVector(embedding), string(job.JobStatusPublished), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to recommend jobs: %w", err)
	}

	recommended := make([]job.RecommendedJob, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		recommended = append(recommended, job.RecommendedJob{
			Job:        *entity,
			Similarity: models[i].Similarity,
		})
	}

	return recommended, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (r *PostgresJobRepository) paginatedList(ctx context.Context, whereClause string, args []any, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	pagination = pagination.Normalize()

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, jobColumns, whereClause, len(args)+1, len(args)+2)

	args = append(args, pagination.PageSize, pagination.Offset())

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	entities := make([]job.Job, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}

	paginated := kernel.NewPaginated(entities, pagination.Page, pagination.PageSize, total)
	return &paginated, nil
}
