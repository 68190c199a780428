package application

import (
	"time"

	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/recruitment/matching"
)

// ApplyRequest - DTO for submitting a new application
type ApplyRequest struct {
	JobID       kernel.JobID       `json:"job_id" validate:"required"`
	CandidateID kernel.CandidateID `json:"candidate_id" validate:"required"`
	CoverLetter string             `json:"cover_letter,omitempty"`
}

// ListApplicationsByJobRequest - DTO for listing applications by job
type ListApplicationsByJobRequest struct {
	JobID      kernel.JobID             `json:"job_id" validate:"required"`
	Status     ApplicationStatus        `json:"status,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// ListApplicationsByCandidateRequest - DTO for listing applications by candidate
type ListApplicationsByCandidateRequest struct {
	CandidateID kernel.CandidateID       `json:"candidate_id" validate:"required"`
	Pagination  kernel.PaginationOptions `json:"pagination"`
}

// Response type aliases for paginated applications
type PaginatedApplicationsResponse = kernel.Paginated[ApplicationResponse]
type PaginatedRankedApplicationsResponse = kernel.Paginated[RankedApplicationResponse]

// ApplicationResponse - DTO for returning application data
type ApplicationResponse struct {
	ID              kernel.ApplicationID  `json:"id"`
	JobID           kernel.JobID          `json:"job_id"`
	CandidateID     kernel.CandidateID    `json:"candidate_id"`
	CoverLetter     string                `json:"cover_letter,omitempty"`
	ATSScore        int                   `json:"ats_score"`
	MatchDetails    *matching.MatchResult `json:"match_details,omitempty"`
	Status          ApplicationStatus     `json:"status"`
	ReviewerID      *kernel.UserID        `json:"reviewer_id,omitempty"`
	StatusChangedAt *time.Time            `json:"status_changed_at,omitempty"`
	AppliedAt       time.Time             `json:"applied_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// RankedApplicationResponse - DTO for returning a ranked applicant on a job,
// enriched with candidate contact details for the recruiter view
type RankedApplicationResponse struct {
	Application    ApplicationResponse `json:"application"`
	CandidateName  string              `json:"candidate_name"`
	CandidateEmail kernel.Email        `json:"candidate_email"`
}

// AssignReviewerRequest - Request to assign reviewer
type AssignReviewerRequest struct {
	ReviewerID kernel.UserID `json:"reviewer_id" validate:"required"`
}

// UpdateStatusRequest - Request to update application status
type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required"`
	Reason string            `json:"reason,omitempty"`
}

// WithdrawApplicationRequest - Request to withdraw an application
type WithdrawApplicationRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ApplicationStatsResponse - Statistics for an application
type ApplicationStatsResponse struct {
	ApplicationID         kernel.ApplicationID `json:"application_id"`
	Status                ApplicationStatus    `json:"status"`
	ATSScore              int                  `json:"ats_score"`
	IsArchived            bool                 `json:"is_archived"`
	HasReviewer           bool                 `json:"has_reviewer"`
	DaysSinceSubmission   int                  `json:"days_since_submission"`
	DaysSinceLastUpdate   int                  `json:"days_since_last_update"`
	DaysSinceStatusChange *int                 `json:"days_since_status_change,omitempty"`
	AppliedAt             time.Time            `json:"applied_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
}

// ToApplicationResponse converts an Application entity to its response DTO
func ToApplicationResponse(a *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		JobID:           a.JobID,
		CandidateID:     a.CandidateID,
		CoverLetter:     a.CoverLetter,
		ATSScore:        a.ATSScore,
		MatchDetails:    a.MatchDetails,
		Status:          a.Status,
		ReviewerID:      a.ReviewerID,
		StatusChangedAt: a.StatusChangedAt,
		AppliedAt:       a.AppliedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
