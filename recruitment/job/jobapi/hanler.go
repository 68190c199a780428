package jobapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/validatex"
	"github.com/talentgate/talentgate/recruitment/job"
	"github.com/talentgate/talentgate/recruitment/job/jobsrv"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterRoutes wires the job endpoints
func (h *Handlers) RegisterRoutes(app *fiber.App) {
	jobs := app.Group("/api/v1/jobs")

	jobs.Post("/", h.CreateJob)
	jobs.Get("/", h.ListJobs)
	jobs.Get("/published", h.ListPublishedJobs)
	jobs.Post("/search", h.SearchJobs)
	jobs.Get("/:id", h.GetJobByID)
	jobs.Put("/:id", h.UpdateJob)
	jobs.Delete("/:id", h.DeleteJob)
	jobs.Get("/:id/stats", h.GetJobStats)

	// Lifecycle
	jobs.Post("/:id/publish", h.PublishJob)
	jobs.Post("/:id/unpublish", h.UnpublishJob)
	jobs.Post("/:id/close", h.CloseJob)
	jobs.Post("/:id/archive", h.ArchiveJob)
	jobs.Post("/:id/unarchive", h.UnarchiveJob)

	// Recommendations for a candidate
	app.Get("/api/v1/candidates/:id/recommended-jobs", h.RecommendJobs)
}

// CreateJob creates a new job posting
// POST /api/v1/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJobData().WithDetail("parse_error", err.Error())
	}
	if fields := validatex.Struct(req); fields != nil {
		return job.ErrInvalidJobData().WithDetails(fields)
	}

	newJob, err := h.service.CreateJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// GetJobByID retrieves a job by ID
// GET /api/v1/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	jobResp, err := h.service.GetJobByID(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(jobResp)
}

// ListJobs retrieves all jobs with pagination
// GET /api/v1/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListJobs(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ListPublishedJobs retrieves only published/active jobs
// GET /api/v1/jobs/published
func (h *Handlers) ListPublishedJobs(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListPublishedJobs(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// SearchJobs searches jobs by various criteria
// POST /api/v1/jobs/search
func (h *Handlers) SearchJobs(c *fiber.Ctx) error {
	var req job.SearchJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJobData().WithDetail("parse_error", err.Error())
	}

	jobs, err := h.service.SearchJobs(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// UpdateJob updates an existing job
// PUT /api/v1/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJobData().WithDetail("parse_error", err.Error())
	}
	if fields := validatex.Struct(req); fields != nil {
		return job.ErrInvalidJobData().WithDetails(fields)
	}

	jobResp, err := h.service.UpdateJob(c.Context(), jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(jobResp)
}

// DeleteJob deletes a job
// DELETE /api/v1/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))

	if err := h.service.DeleteJob(c.Context(), jobID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetJobStats returns statistics for a job
// GET /api/v1/jobs/:id/stats
func (h *Handlers) GetJobStats(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))

	stats, err := h.service.GetJobStats(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// ============================================================================
// Lifecycle Handlers
// ============================================================================

// PublishJob marks a job as published
// POST /api/v1/jobs/:id/publish
func (h *Handlers) PublishJob(c *fiber.Ctx) error {
	jobResp, err := h.service.PublishJob(c.Context(), kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(jobResp)
}

// UnpublishJob reverts a job to draft
// POST /api/v1/jobs/:id/unpublish
func (h *Handlers) UnpublishJob(c *fiber.Ctx) error {
	jobResp, err := h.service.UnpublishJob(c.Context(), kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(jobResp)
}

// CloseJob stops a job from accepting applications
// POST /api/v1/jobs/:id/close
func (h *Handlers) CloseJob(c *fiber.Ctx) error {
	jobResp, err := h.service.CloseJob(c.Context(), kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(jobResp)
}

// ArchiveJob archives a job
// POST /api/v1/jobs/:id/archive
func (h *Handlers) ArchiveJob(c *fiber.Ctx) error {
	jobResp, err := h.service.ArchiveJob(c.Context(), kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(jobResp)
}

// UnarchiveJob restores an archived job to draft
// POST /api/v1/jobs/:id/unarchive
func (h *Handlers) UnarchiveJob(c *fiber.Ctx) error {
	jobResp, err := h.service.UnarchiveJob(c.Context(), kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(jobResp)
}

// RecommendJobs returns published jobs ranked by similarity to a candidate's
// profile
// GET /api/v1/candidates/:id/recommended-jobs
func (h *Handlers) RecommendJobs(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))
	limit := c.QueryInt("limit", jobsrv.DefaultRecommendationLimit)

	resp, err := h.service.RecommendJobsForCandidate(c.Context(), candidateID, limit)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}
}
