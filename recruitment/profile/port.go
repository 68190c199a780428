package profile

import (
	"context"
	"time"

	"github.com/talentgate/talentgate/pkg/kernel"
)

type Repository interface {
	// Upsert creates or replaces the profile for a candidate
	Upsert(ctx context.Context, p *Profile) error

	// GetByCandidateID retrieves a candidate's profile
	GetByCandidateID(ctx context.Context, id kernel.CandidateID) (*Profile, error)

	// Delete removes a candidate's profile
	Delete(ctx context.Context, id kernel.CandidateID) error

	// Exists checks if a candidate has a profile
	Exists(ctx context.Context, id kernel.CandidateID) (bool, error)

	// UpdateEmbedding updates only the embedding vector for a profile
	UpdateEmbedding(ctx context.Context, id kernel.CandidateID, embedding kernel.ProfileEmbedding) error
}

type JobRepository interface {
	Create(ctx context.Context, job *ParseResumeJob) error
	Update(ctx context.Context, job *ParseResumeJob) error
	GetByID(ctx context.Context, jobID kernel.ParseJobID) (*ParseResumeJob, error)
	ListByCandidateID(ctx context.Context, id kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[ParseResumeJob], error)

	// Update status helpers
	MarkAsProcessing(ctx context.Context, jobID kernel.ParseJobID) error
	MarkAsCompleted(ctx context.Context, jobID kernel.ParseJobID) error
	MarkAsFailed(ctx context.Context, jobID kernel.ParseJobID, errorMsg string, errorDetails map[string]any) error
	UpdateStep(ctx context.Context, jobID kernel.ParseJobID, step ProcessingStep) error
}

// JobQueue defines the interface for job queue operations
type JobQueue interface {
	// Enqueue adds a job to the queue
	Enqueue(ctx context.Context, jobID kernel.ParseJobID, payload any) error

	// Dequeue gets a job from the queue (blocking with timeout)
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// EnqueueDelayed schedules a job for later processing (for retries)
	EnqueueDelayed(ctx context.Context, jobID kernel.ParseJobID, payload any, delay time.Duration) error

	// MoveDelayedToReady moves delayed jobs that are ready to the main queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	// GetQueueSize returns the number of jobs in the queue
	GetQueueSize(ctx context.Context) (int64, error)

	// GetDelayedQueueSize returns the number of delayed jobs
	GetDelayedQueueSize(ctx context.Context) (int64, error)

	// Clear removes all jobs from the queue (use with caution)
	Clear(ctx context.Context) error
}

// MatchInvalidator drops cached match scores when a candidate's profile
// changes. Implemented by the matching cache; declared here to avoid a
// package cycle.
type MatchInvalidator interface {
	InvalidateCandidate(ctx context.Context, id kernel.CandidateID) error
}
