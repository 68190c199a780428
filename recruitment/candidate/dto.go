package candidate

import (
	"time"

	"github.com/talentgate/talentgate/pkg/kernel"
)

// CreateCandidateRequest - DTO for creating a new candidate
type CreateCandidateRequest struct {
	Email     kernel.Email     `json:"email" validate:"required,email"`
	Phone     kernel.Phone     `json:"phone" validate:"required"`
	FirstName kernel.FirstName `json:"first_name" validate:"required"`
	LastName  kernel.LastName  `json:"last_name" validate:"required"`
}

// UpdateCandidateRequest - DTO for updating an existing candidate
type UpdateCandidateRequest struct {
	Email     *kernel.Email     `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *kernel.Phone     `json:"phone,omitempty"`
	FirstName *kernel.FirstName `json:"first_name,omitempty"`
	LastName  *kernel.LastName  `json:"last_name,omitempty"`
}

// SearchCandidatesRequest - DTO for searching candidates
type SearchCandidatesRequest struct {
	Query      string                   `json:"query,omitempty"`
	Email      string                   `json:"email,omitempty"`
	Phone      string                   `json:"phone,omitempty"`
	Status     string                   `json:"status,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// ListCandidatesRequest - DTO for listing all candidates
type ListCandidatesRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated candidates
type PaginatedCandidatesResponse = kernel.Paginated[CandidateResponse]

// CandidateResponse - DTO for returning candidate data
type CandidateResponse struct {
	ID        kernel.CandidateID `json:"id"`
	Email     kernel.Email       `json:"email"`
	Phone     kernel.Phone       `json:"phone"`
	FirstName kernel.FirstName   `json:"first_name"`
	LastName  kernel.LastName    `json:"last_name"`
	Status    CandidateStatus    `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// CandidateStatsResponse - Statistics for a candidate
type CandidateStatsResponse struct {
	CandidateID           kernel.CandidateID `json:"candidate_id"`
	FullName              string             `json:"full_name"`
	Email                 kernel.Email       `json:"email"`
	Status                CandidateStatus    `json:"status"`
	TotalApplications     int64              `json:"total_applications"`
	IsArchived            bool               `json:"is_archived"`
	DaysSinceRegistration int                `json:"days_since_registration"`
	DaysSinceLastUpdate   int                `json:"days_since_last_update"`
	DaysSinceArchived     *int               `json:"days_since_archived,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

// ArchiveCandidateRequest - Request to archive a candidate
type ArchiveCandidateRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CandidateDetailsResponse - Extended candidate information with applications
type CandidateDetailsResponse struct {
	Candidate         CandidateResponse `json:"candidate"`
	ApplicationCount  int64             `json:"application_count"`
	LastApplicationAt *time.Time        `json:"last_application_at,omitempty"`
	HasProfile        bool              `json:"has_profile"`
}

// ToCandidateResponse converts a Candidate entity to its response DTO
func ToCandidateResponse(c *Candidate) CandidateResponse {
	return CandidateResponse{
		ID:        c.ID,
		Email:     c.Email,
		Phone:     c.Phone,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
