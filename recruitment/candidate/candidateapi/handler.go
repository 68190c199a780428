package candidateapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/validatex"
	"github.com/talentgate/talentgate/recruitment/candidate"
	"github.com/talentgate/talentgate/recruitment/candidate/candidatesrv"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.CandidateService
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateCandidate creates a new candidate
// POST /api/v1/candidates
func (h *Handlers) CreateCandidate(c *fiber.Ctx) error {
	var req candidate.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if fields := validatex.Struct(req); fields != nil {
		return candidate.ErrValidationFailed().WithDetails(fields)
	}

	newCandidate, err := h.service.CreateCandidate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(candidate.ToCandidateResponse(newCandidate))
}

// GetCandidateByID retrieves a candidate by ID
// GET /api/v1/candidates/:id
func (h *Handlers) GetCandidateByID(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	candidateResp, err := h.service.GetCandidateByID(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(candidateResp)
}

// GetCandidateByEmail retrieves a candidate by email
// GET /api/v1/candidates/by-email/:email
func (h *Handlers) GetCandidateByEmail(c *fiber.Ctx) error {
	email := kernel.Email(c.Params("email"))
	if email == "" {
		return candidate.ErrInvalidEmail().WithDetail("email", "missing or empty")
	}

	candidateResp, err := h.service.GetCandidateByEmail(c.Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(candidateResp)
}

// GetCandidateDetails retrieves a candidate with application and profile info
// GET /api/v1/candidates/:id/details
func (h *Handlers) GetCandidateDetails(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	details, err := h.service.GetCandidateDetails(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(details)
}

// ListCandidates retrieves all candidates with pagination
// GET /api/v1/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	candidates, err := h.service.ListCandidates(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// ListArchivedCandidates retrieves archived candidates with pagination
// GET /api/v1/candidates/archived
func (h *Handlers) ListArchivedCandidates(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	candidates, err := h.service.ListArchivedCandidates(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// SearchCandidates searches candidates by various criteria
// POST /api/v1/candidates/search
func (h *Handlers) SearchCandidates(c *fiber.Ctx) error {
	var req candidate.SearchCandidatesRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	candidates, err := h.service.SearchCandidates(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// UpdateCandidate updates an existing candidate
// PUT /api/v1/candidates/:id
func (h *Handlers) UpdateCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	var req candidate.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if fields := validatex.Struct(req); fields != nil {
		return candidate.ErrValidationFailed().WithDetails(fields)
	}

	updatedCandidate, err := h.service.UpdateCandidate(c.Context(), candidateID, req)
	if err != nil {
		return err
	}

	return c.JSON(candidate.ToCandidateResponse(updatedCandidate))
}

// DeleteCandidate deletes a candidate
// DELETE /api/v1/candidates/:id
func (h *Handlers) DeleteCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteCandidate(c.Context(), candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ArchiveCandidate archives a candidate
// POST /api/v1/candidates/:id/archive
func (h *Handlers) ArchiveCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.ArchiveCandidate(c.Context(), candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Candidate archived successfully",
	})
}

// UnarchiveCandidate unarchives a candidate
// POST /api/v1/candidates/:id/unarchive
func (h *Handlers) UnarchiveCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.UnarchiveCandidate(c.Context(), candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Candidate unarchived successfully",
	})
}

// GetCandidateStats retrieves statistics for a candidate
// GET /api/v1/candidates/:id/stats
func (h *Handlers) GetCandidateStats(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	stats, err := h.service.GetCandidateStats(c.Context(), candidateID)
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

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/v1/candidates")

	// Read routes
	api.Get("/", handlers.ListCandidates)
	api.Get("/archived", handlers.ListArchivedCandidates)
	api.Get("/by-email/:email", handlers.GetCandidateByEmail)
	api.Get("/:id", handlers.GetCandidateByID)
	api.Get("/:id/details", handlers.GetCandidateDetails)
	api.Get("/:id/stats", handlers.GetCandidateStats)

	// Search route
	api.Post("/search", handlers.SearchCandidates)

	// Write routes
	api.Post("/", handlers.CreateCandidate)
	api.Put("/:id", handlers.UpdateCandidate)
	api.Post("/:id/archive", handlers.ArchiveCandidate)
	api.Post("/:id/unarchive", handlers.UnarchiveCandidate)

	// Delete route
	api.Delete("/:id", handlers.DeleteCandidate)
}
