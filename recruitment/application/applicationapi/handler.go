package applicationapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/validatex"
	"github.com/talentgate/talentgate/recruitment/application"
	"github.com/talentgate/talentgate/recruitment/application/applicationsrv"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Apply submits a new application
// POST /api/v1/applications
func (h *Handlers) Apply(c *fiber.Ctx) error {
	var req application.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if fields := validatex.Struct(req); fields != nil {
		return application.ErrValidationFailed().WithDetails(fields)
	}

	newApplication, err := h.service.Apply(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(application.ToApplicationResponse(newApplication))
}

// GetApplicationByID retrieves an application by ID
// GET /api/v1/applications/:id
func (h *Handlers) GetApplicationByID(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetApplicationByID(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListApplications retrieves all applications with pagination
// GET /api/v1/applications
func (h *Handlers) ListApplications(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	applications, err := h.service.ListApplications(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(applications)
}

// ListApplicationsByJob retrieves ranked applications for a job
// GET /api/v1/jobs/:job_id/applications
func (h *Handlers) ListApplicationsByJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("job_id"))
	if jobID == "" {
		return application.ErrValidationFailed().WithDetail("job_id", "missing or empty")
	}

	req := application.ListApplicationsByJobRequest{
		JobID:      jobID,
		Status:     application.ApplicationStatus(c.Query("status")),
		Pagination: parsePaginationOptions(c),
	}

	applications, err := h.service.ListApplicationsByJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(applications)
}

// ListApplicationsByCandidate retrieves applications for a candidate
// GET /api/v1/candidates/:id/applications
func (h *Handlers) ListApplicationsByCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return application.ErrValidationFailed().WithDetail("candidate_id", "missing or empty")
	}

	applications, err := h.service.ListApplicationsByCandidate(c.Context(), candidateID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(applications)
}

// ListApplicationsByReviewer retrieves applications assigned to a reviewer
// GET /api/v1/applications/by-reviewer/:reviewer_id
func (h *Handlers) ListApplicationsByReviewer(c *fiber.Ctx) error {
	reviewerID := kernel.UserID(c.Params("reviewer_id"))
	if reviewerID == "" {
		return application.ErrValidationFailed().WithDetail("reviewer_id", "missing or empty")
	}

	applications, err := h.service.ListApplicationsByReviewer(c.Context(), reviewerID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(applications)
}

// UpdateApplicationStatus moves an application through the review pipeline
// PATCH /api/v1/applications/:id/status
func (h *Handlers) UpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if fields := validatex.Struct(req); fields != nil {
		return application.ErrValidationFailed().WithDetails(fields)
	}

	updated, err := h.service.UpdateApplicationStatus(c.Context(), applicationID, req)
	if err != nil {
		return err
	}

	return c.JSON(application.ToApplicationResponse(updated))
}

// AssignReviewer assigns a reviewer to an application
// POST /api/v1/applications/:id/reviewer
func (h *Handlers) AssignReviewer(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.AssignReviewerRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if fields := validatex.Struct(req); fields != nil {
		return application.ErrValidationFailed().WithDetails(fields)
	}

	updated, err := h.service.AssignReviewer(c.Context(), applicationID, req.ReviewerID)
	if err != nil {
		return err
	}

	return c.JSON(application.ToApplicationResponse(updated))
}

// WithdrawApplication withdraws an application
// POST /api/v1/applications/:id/withdraw
func (h *Handlers) WithdrawApplication(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	updated, err := h.service.WithdrawApplication(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(application.ToApplicationResponse(updated))
}

// ArchiveApplication archives an application
// POST /api/v1/applications/:id/archive
func (h *Handlers) ArchiveApplication(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.ArchiveApplication(c.Context(), applicationID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Application archived successfully",
	})
}

// UnarchiveApplication unarchives an application
// POST /api/v1/applications/:id/unarchive
func (h *Handlers) UnarchiveApplication(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.UnarchiveApplication(c.Context(), applicationID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Application unarchived successfully",
	})
}

// DeleteApplication deletes an application
// DELETE /api/v1/applications/:id
func (h *Handlers) DeleteApplication(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteApplication(c.Context(), applicationID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// GetApplicationStats retrieves statistics for an application
// GET /api/v1/applications/:id/stats
func (h *Handlers) GetApplicationStats(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	stats, err := h.service.GetApplicationStats(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}.Normalize()
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/v1/applications")

	// Read routes
	api.Get("/", handlers.ListApplications)
	api.Get("/by-reviewer/:reviewer_id", handlers.ListApplicationsByReviewer)
	api.Get("/:id", handlers.GetApplicationByID)
	api.Get("/:id/stats", handlers.GetApplicationStats)

	// Write routes
	api.Post("/", handlers.Apply)
	api.Patch("/:id/status", handlers.UpdateApplicationStatus)
	api.Post("/:id/reviewer", handlers.AssignReviewer)
	api.Post("/:id/withdraw", handlers.WithdrawApplication)
	api.Post("/:id/archive", handlers.ArchiveApplication)
	api.Post("/:id/unarchive", handlers.UnarchiveApplication)

	// Delete route
	api.Delete("/:id", handlers.DeleteApplication)

	// Cross-aggregate listings
	app.Get("/api/v1/jobs/:job_id/applications", handlers.ListApplicationsByJob)
	app.Get("/api/v1/candidates/:id/applications", handlers.ListApplicationsByCandidate)
}
