package profile

import (
	"time"

	"github.com/talentgate/talentgate/pkg/kernel"
)

// ParseResumeTextRequest - Parse raw resume text synchronously
type ParseResumeTextRequest struct {
	CandidateID kernel.CandidateID `json:"candidate_id" validate:"required"`
	Text        string             `json:"text" validate:"required"`
}

// UploadResumeRequest - Queue an uploaded resume file for processing
type UploadResumeRequest struct {
	CandidateID kernel.CandidateID `json:"candidate_id" validate:"required"`
	FileName    string             `json:"file_name" validate:"required"`
	ContentType string             `json:"content_type" validate:"required"`
	Data        []byte             `json:"-"`
}

// UpsertProfileRequest - Create or replace a candidate's profile
type UpsertProfileRequest struct {
	CandidateID kernel.CandidateID `json:"candidate_id" validate:"required"`
	Data        CandidateProfile   `json:"data" validate:"required"`
}

// ProfileResponse - Full profile response
type ProfileResponse struct {
	CandidateID kernel.CandidateID `json:"candidate_id"`
	Data        CandidateProfile   `json:"data"`
	ResumeURL   string             `json:"resume_url,omitempty"`
	FileName    string             `json:"file_name,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ParseResumeTextResponse - Result of a synchronous text parse
type ParseResumeTextResponse struct {
	CandidateID kernel.CandidateID `json:"candidate_id"`
	Profile     CandidateProfile   `json:"profile"`
	UsedAI      bool               `json:"used_ai"`
}

// UploadAcceptedResponse - 202 body for queued resume uploads
type UploadAcceptedResponse struct {
	JobID   kernel.ParseJobID `json:"job_id"`
	Status  JobStatus         `json:"status"`
	Message string            `json:"message"`
}

// ToProfileResponse converts the stored aggregate to its API shape.
func ToProfileResponse(p *Profile) *ProfileResponse {
	return &ProfileResponse{
		CandidateID: p.CandidateID,
		Data:        p.Data,
		ResumeURL:   p.ResumeURL.String(),
		FileName:    p.FileName,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToJobStatusResponse converts a processing job to its API shape.
func ToJobStatusResponse(j *ParseResumeJob) *JobStatusResponse {
	resp := &JobStatusResponse{
		JobID:        j.ID,
		CandidateID:  j.CandidateID,
		Status:       j.Status,
		CurrentStep:  j.CurrentStep,
		AttemptCount: j.AttemptCount,
		NextRetryAt:  j.NextRetryAt,
		CreatedAt:    j.CreatedAt,
		StartedAt:    j.StartedAt,
		CompletedAt:  j.CompletedAt,
		FailedAt:     j.FailedAt,
	}

	switch j.Status {
	case JobStatusPending:
		resp.Message = "Resume is queued for processing"
	case JobStatusProcessing:
		resp.Message = "Resume is being processed"
	case JobStatusCompleted:
		resp.Message = "Resume processed successfully"
	case JobStatusFailed:
		resp.Message = "Resume processing failed"
		resp.Error = &JobError{Message: j.ErrorMessage, Details: j.ErrorDetails}
	}

	return resp
}
