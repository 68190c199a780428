package job

import (
	"time"

	"github.com/talentgate/talentgate/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	Title        kernel.JobTitle         `json:"job_title" validate:"required"`
	Description  kernel.JobDescription   `json:"job_description" validate:"required"`
	Position     kernel.JobPosition      `json:"job_position" validate:"required"`
	Requirements []kernel.JobRequirement `json:"requirements,omitempty"`
	Skills       []JobSkill              `json:"skills,omitempty" validate:"dive"`
	Experience   ExperienceRange         `json:"experience"`
	Benefits     []kernel.JobBenefit     `json:"benefits,omitempty"`
	PostedBy     kernel.UserID           `json:"posted_by" validate:"required"`
}

// UpdateJobRequest - DTO for updating an existing job
type UpdateJobRequest struct {
	Title        *kernel.JobTitle         `json:"job_title,omitempty"`
	Description  *kernel.JobDescription   `json:"job_description,omitempty"`
	Position     *kernel.JobPosition      `json:"job_position,omitempty"`
	Requirements *[]kernel.JobRequirement `json:"requirements,omitempty"`
	Skills       *[]JobSkill              `json:"skills,omitempty"`
	Experience   *ExperienceRange         `json:"experience,omitempty"`
	Benefits     *[]kernel.JobBenefit     `json:"benefits,omitempty"`
}

// ListJobsRequest - DTO for listing all jobs
type ListJobsRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// SearchJobsRequest - DTO for searching jobs
type SearchJobsRequest struct {
	Query         string                   `json:"query,omitempty"`
	Title         string                   `json:"title,omitempty"`
	Position      string                   `json:"position,omitempty"`
	PostedBy      string                   `json:"posted_by,omitempty"`
	Skill         string                   `json:"skill,omitempty"`
	OnlyPublished bool                     `json:"only_published"`
	Pagination    kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// JobResponse - DTO for returning job data
type JobResponse struct {
	ID           kernel.JobID            `json:"id"`
	Title        kernel.JobTitle         `json:"job_title"`
	Description  kernel.JobDescription   `json:"job_description"`
	Position     kernel.JobPosition      `json:"job_position"`
	Requirements []kernel.JobRequirement `json:"requirements"`
	Skills       []JobSkill              `json:"skills"`
	Experience   ExperienceRange         `json:"experience"`
	Benefits     []kernel.JobBenefit     `json:"benefits"`
	PostedBy     kernel.UserID           `json:"posted_by"`
	Status       JobStatus               `json:"status"`
	PublishedAt  *time.Time              `json:"published_at,omitempty"`
	ArchivedAt   *time.Time              `json:"archived_at,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// JobStatsResponse - Statistics for a job
type JobStatsResponse struct {
	JobID              kernel.JobID    `json:"job_id"`
	Title              kernel.JobTitle `json:"title"`
	Status             JobStatus       `json:"status"`
	TotalApplications  int64           `json:"total_applications"`
	IsPublished        bool            `json:"is_published"`
	IsArchived         bool            `json:"is_archived"`
	DaysSincePublished *int            `json:"days_since_published,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// RecommendedJob - A published job with its similarity to a candidate's
// profile embedding
type RecommendedJob struct {
	Job        Job     `json:"job"`
	Similarity float64 `json:"similarity"`
}

// RecommendJobsResponse - Job recommendations for a candidate
type RecommendJobsResponse struct {
	CandidateID     kernel.CandidateID   `json:"candidate_id"`
	Recommendations []RecommendedJobItem `json:"recommendations"`
}

// RecommendedJobItem flattens a recommendation for the API.
type RecommendedJobItem struct {
	Job        JobResponse `json:"job"`
	Similarity float64     `json:"similarity"`
}

// ToJobResponse converts a Job domain model to its API shape.
func ToJobResponse(j *Job) *JobResponse {
	j.Normalize()
	return &JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Position:     j.Position,
		Requirements: j.Requirements,
		Skills:       j.Skills,
		Experience:   j.Experience,
		Benefits:     j.Benefits,
		PostedBy:     j.PostedBy,
		Status:       j.Status,
		PublishedAt:  j.PublishedAt,
		ArchivedAt:   j.ArchivedAt,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}
