package application

import (
	"context"

	"github.com/talentgate/talentgate/pkg/kernel"
)

type Repository interface {
	// Create creates a new application
	Create(ctx context.Context, application *Application) error

	// Update updates an existing application
	Update(ctx context.Context, id kernel.ApplicationID, application *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// Delete deletes an application by ID
	Delete(ctx context.Context, id kernel.ApplicationID) error

	// List retrieves all applications with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// ListByJobID retrieves applications for a job, ranked by match score
	ListByJobID(ctx context.Context, req ListApplicationsByJobRequest) (*kernel.Paginated[Application], error)

	// ListByCandidateID retrieves applications for a specific candidate
	ListByCandidateID(ctx context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// ListRankedByJobID retrieves applications for a job ranked by match score,
	// enriched with candidate details
	ListRankedByJobID(ctx context.Context, req ListApplicationsByJobRequest) (*kernel.Paginated[RankedApplicationResponse], error)

	// ListByReviewer retrieves applications assigned to a reviewer
	ListByReviewer(ctx context.Context, reviewerID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// Exists checks if an application exists by ID
	Exists(ctx context.Context, id kernel.ApplicationID) (bool, error)

	// ExistsByJobAndCandidate checks if an application exists for a job and candidate
	ExistsByJobAndCandidate(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (bool, error)

	// CountByJobID counts applications for a specific job
	CountByJobID(ctx context.Context, jobID kernel.JobID) (int64, error)

	// CountByCandidateID counts applications for a specific candidate
	CountByCandidateID(ctx context.Context, candidateID kernel.CandidateID) (int64, error)
}
