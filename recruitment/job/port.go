package job

import (
	"context"

	"github.com/talentgate/talentgate/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Update updates an existing job
	Update(ctx context.Context, id kernel.JobID, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Delete deletes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// List retrieves all jobs with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListByUserID retrieves jobs posted by a specific user
	ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// Search searches jobs by various criteria
	Search(ctx context.Context, req SearchJobsRequest) (*kernel.Paginated[Job], error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// CountByUserID counts the number of jobs posted by a user
	CountByUserID(ctx context.Context, userID kernel.UserID) (int64, error)

	// ListPublished retrieves only published jobs
	ListPublished(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// CountApplications counts applications received by a job
	CountApplications(ctx context.Context, jobID kernel.JobID) (int64, error)

	// UpdateEmbedding updates only the embedding vector for a job
	UpdateEmbedding(ctx context.Context, id kernel.JobID, embedding kernel.JobEmbedding) error

	// RecommendByEmbedding returns published jobs ranked by cosine similarity
	// to the given profile embedding
	RecommendByEmbedding(ctx context.Context, embedding kernel.ProfileEmbedding, limit int) ([]RecommendedJob, error)
}
