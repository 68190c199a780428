package profile

import (
	"time"

	"github.com/talentgate/talentgate/pkg/kernel"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

type ProcessingStep string

const (
	StepReading      ProcessingStep = "reading"
	StepInterpreting ProcessingStep = "interpreting"
	StepEmbedding    ProcessingStep = "embedding"
	StepSaving       ProcessingStep = "saving"
)

// ParseResumeJob tracks one asynchronous resume-processing request from
// upload to stored profile.
type ParseResumeJob struct {
	ID          kernel.ParseJobID  `db:"id" json:"id"`
	CandidateID kernel.CandidateID `db:"candidate_id" json:"candidate_id"`

	Status      JobStatus `db:"status" json:"status"`
	FilePath    string    `db:"file_path" json:"file_path"`
	FileName    string    `db:"file_name" json:"file_name"`
	ContentType string    `db:"content_type" json:"content_type"`

	AttemptCount int `db:"attempt_count" json:"attempt_count"`
	MaxAttempts  int `db:"max_attempts" json:"max_attempts"`

	ErrorMessage string         `db:"error_message" json:"error_message,omitempty"`
	ErrorDetails map[string]any `db:"error_details" json:"error_details,omitempty"`

	CurrentStep *ProcessingStep `db:"current_step" json:"current_step,omitempty"`

	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	StartedAt   *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	FailedAt    *time.Time `db:"failed_at" json:"failed_at,omitempty"`
	NextRetryAt *time.Time `db:"next_retry_at" json:"next_retry_at,omitempty"`
}

// CanRetry reports whether the job has attempts left.
func (j *ParseResumeJob) CanRetry() bool {
	return j.AttemptCount < j.MaxAttempts
}

// JobStatusResponse - Response for job status queries
type JobStatusResponse struct {
	JobID       kernel.ParseJobID  `json:"job_id"`
	CandidateID kernel.CandidateID `json:"candidate_id"`
	Status      JobStatus          `json:"status"`
	Message     string             `json:"message"`
	CurrentStep *ProcessingStep    `json:"current_step,omitempty"`
	Error       *JobError          `json:"error,omitempty"`

	AttemptCount int        `json:"attempt_count,omitempty"`
	NextRetryAt  *time.Time `json:"next_retry_at,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`
}

// JobError - Error details for failed jobs
type JobError struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
