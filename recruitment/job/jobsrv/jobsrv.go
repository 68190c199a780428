package jobsrv

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentgate/talentgate/internal/ai/embeddings"
	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/recruitment/job"
	"github.com/talentgate/talentgate/recruitment/profile"
)

const DefaultRecommendationLimit = 10

// JobService provides business operations for jobs
type JobService struct {
	jobRepo     job.Repository
	profileRepo profile.Repository
	embedGen    *embeddings.Generator
}

// NewJobService creates a new instance of the job service. embedGen may be
// nil; recommendations then degrade to an explicit error.
func NewJobService(
	jobRepo job.Repository,
	profileRepo profile.Repository,
	embedGen *embeddings.Generator,
) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		embedGen:    embedGen,
	}
}

// CreateJob creates a new job posting
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.JobResponse, error) {
	for _, skill := range req.Skills {
		if skill.Weight < 0 {
			return nil, job.ErrInvalidSkillWeight().
				WithDetail("skill", skill.Name).
				WithDetail("weight", skill.Weight)
		}
	}

	if req.Experience.Min < 0 || (req.Experience.Max > 0 && req.Experience.Max < req.Experience.Min) {
		return nil, job.ErrInvalidJobData().
			WithDetail("field", "experience").
			WithDetail("min", req.Experience.Min).
			WithDetail("max", req.Experience.Max)
	}

	newJob := &job.Job{
		ID:           kernel.NewJobID(uuid.NewString()),
		Title:        req.Title,
		Description:  req.Description,
		Position:     req.Position,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		Experience:   req.Experience,
		Benefits:     req.Benefits,
		PostedBy:     req.PostedBy,
		Status:       job.JobStatusDraft, // Start as draft
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	newJob.Normalize()

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	s.refreshEmbedding(ctx, newJob)

	return job.ToJobResponse(newJob), nil
}

// GetJobByID retrieves a job by ID
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	return job.ToJobResponse(jobEntity), nil
}

// GetJobsByUser retrieves all jobs posted by a specific user
func (s *JobService) GetJobsByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get jobs by user", errx.TypeInternal)
	}
	return toPaginatedResponse(jobs), nil
}

// ListJobs retrieves all jobs with pagination
func (s *JobService) ListJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}
	return toPaginatedResponse(jobs), nil
}

// ListPublishedJobs retrieves only published/active jobs
func (s *JobService) ListPublishedJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListPublished(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list published jobs", errx.TypeInternal)
	}
	return toPaginatedResponse(jobs), nil
}

// SearchJobs searches jobs by various criteria
func (s *JobService) SearchJobs(ctx context.Context, req job.SearchJobsRequest) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.Search(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search jobs", errx.TypeInternal)
	}
	return toPaginatedResponse(jobs), nil
}

// UpdateJob updates an existing job
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if !jobEntity.CanBeEdited() {
		return nil, job.ErrJobArchived().WithDetail("job_id", jobID.String())
	}

	if req.Title != nil {
		jobEntity.Title = *req.Title
	}
	if req.Description != nil {
		jobEntity.Description = *req.Description
	}
	if req.Position != nil {
		jobEntity.Position = *req.Position
	}
	if req.Requirements != nil {
		jobEntity.Requirements = *req.Requirements
	}
	if req.Skills != nil {
		for _, skill := range *req.Skills {
			if skill.Weight < 0 {
				return nil, job.ErrInvalidSkillWeight().
					WithDetail("skill", skill.Name).
					WithDetail("weight", skill.Weight)
			}
		}
		jobEntity.Skills = *req.Skills
	}
	if req.Experience != nil {
		jobEntity.Experience = *req.Experience
	}
	if req.Benefits != nil {
		jobEntity.Benefits = *req.Benefits
	}
	jobEntity.Normalize()
	jobEntity.UpdatedAt = time.Now()

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}

	s.refreshEmbedding(ctx, jobEntity)

	return job.ToJobResponse(jobEntity), nil
}

// DeleteJob deletes a job if it has no applications
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID) error {
	count, err := s.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		return errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}
	if count > 0 {
		return job.ErrJobHasApplications().
			WithDetail("job_id", jobID.String()).
			WithDetail("application_count", count)
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}
	return nil
}

// ============================================================================
// Lifecycle Operations
// ============================================================================

// PublishJob marks a job as published
func (s *JobService) PublishJob(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := jobEntity.Publish(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to publish job", errx.TypeInternal)
	}

	return job.ToJobResponse(jobEntity), nil
}

// UnpublishJob reverts a job to draft
func (s *JobService) UnpublishJob(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	jobEntity.Unpublish()

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to unpublish job", errx.TypeInternal)
	}

	return job.ToJobResponse(jobEntity), nil
}

// CloseJob stops a job from accepting applications
func (s *JobService) CloseJob(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	jobEntity.Close()

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to close job", errx.TypeInternal)
	}

	return job.ToJobResponse(jobEntity), nil
}

// ArchiveJob archives a job
func (s *JobService) ArchiveJob(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := jobEntity.Archive(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to archive job", errx.TypeInternal)
	}

	return job.ToJobResponse(jobEntity), nil
}

// UnarchiveJob restores an archived job to draft
func (s *JobService) UnarchiveJob(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := jobEntity.Unarchive(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to unarchive job", errx.TypeInternal)
	}

	return job.ToJobResponse(jobEntity), nil
}

// GetJobStats returns statistics for a job
func (s *JobService) GetJobStats(ctx context.Context, jobID kernel.JobID) (*job.JobStatsResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	count, err := s.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	stats := &job.JobStatsResponse{
		JobID:             jobEntity.ID,
		Title:             jobEntity.Title,
		Status:            jobEntity.Status,
		TotalApplications: count,
		IsPublished:       jobEntity.IsPublished(),
		IsArchived:        jobEntity.IsArchived(),
		CreatedAt:         jobEntity.CreatedAt,
	}

	if jobEntity.PublishedAt != nil {
		days := int(time.Since(*jobEntity.PublishedAt).Hours() / 24)
		stats.DaysSincePublished = &days
	}

	return stats, nil
}

// ============================================================================
// Recommendations
// ============================================================================

// RecommendJobsForCandidate returns published jobs ranked by similarity to
// the candidate's profile embedding.
func (s *JobService) RecommendJobsForCandidate(ctx context.Context, candidateID kernel.CandidateID, limit int) (*job.RecommendJobsResponse, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	p, err := s.profileRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, profile.ErrProfileNotFound().WithDetail("candidate_id", candidateID)
	}

	if len(p.Embedding) == 0 {
		return nil, profile.ErrEmbeddingGenerationFailed().
			WithDetail("candidate_id", candidateID).
			WithDetail("reason", "profile has no embedding yet")
	}

	recommended, err := s.jobRepo.RecommendByEmbedding(ctx, p.Embedding, limit)
	if err != nil {
		return nil, errx.Wrap(err, "failed to recommend jobs", errx.TypeInternal)
	}

	items := make([]job.RecommendedJobItem, 0, len(recommended))
	for i := range recommended {
		items = append(items, job.RecommendedJobItem{
			Job:        *job.ToJobResponse(&recommended[i].Job),
			Similarity: recommended[i].Similarity,
		})
	}

	return &job.RecommendJobsResponse{
		CandidateID:     candidateID,
		Recommendations: items,
	}, nil
}

// refreshEmbedding regenerates the job embedding. Failures are logged, never
// propagated.
func (s *JobService) refreshEmbedding(ctx context.Context, j *job.Job) {
	if s.embedGen == nil {
		return
	}

	text := FormatJobForEmbedding(j)
	vector, err := s.embedGen.Generate(ctx, text)
	if err != nil {
		logx.Errorf("Failed to generate job embedding: JobID=%s, error=%v", j.ID, err)
		return
	}

	if err := s.jobRepo.UpdateEmbedding(ctx, j.ID, kernel.JobEmbedding(vector)); err != nil {
		logx.Errorf("Failed to store job embedding: JobID=%s, error=%v", j.ID, err)
	}
}

// FormatJobForEmbedding flattens a posting into the text that gets embedded.
func FormatJobForEmbedding(j *job.Job) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title: %s\n", j.Title))
	sb.WriteString(fmt.Sprintf("Position: %s\n", j.Position))
	sb.WriteString(fmt.Sprintf("Description: %s\n", j.Description))

	if len(j.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		for _, r := range j.Requirements {
			sb.WriteString(fmt.Sprintf("- %s\n", r))
		}
	}

	if len(j.Skills) > 0 {
		sb.WriteString("Skills: " + strings.Join(j.SkillNames(), ", ") + "\n")
	}

	if j.Experience.Min > 0 || j.Experience.Max > 0 {
		sb.WriteString(fmt.Sprintf("Experience: %d-%d years\n", j.Experience.Min, j.Experience.Max))
	}

	return sb.String()
}

func toPaginatedResponse(jobs *kernel.Paginated[job.Job]) *job.PaginatedJobsResponse {
	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for i := range jobs.Items {
		responses = append(responses, *job.ToJobResponse(&jobs.Items[i]))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  jobs.Page,
		Empty: jobs.Empty,
	}
}
