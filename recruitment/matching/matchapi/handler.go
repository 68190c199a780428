package matchapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/recruitment/matching/matchsrv"
)

type MatchHandlers struct {
	service *matchsrv.Service
}

func NewMatchHandlers(service *matchsrv.Service) *MatchHandlers {
	return &MatchHandlers{service: service}
}

func (h *MatchHandlers) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/candidates/:id/matches", h.ListJobMatches)
	app.Get("/api/v1/jobs/:job_id/match/:candidate_id", h.MatchJob)
}

// ListJobMatches returns published jobs ranked by match score for a candidate
// GET /api/v1/candidates/:id/matches
func (h *MatchHandlers) ListJobMatches(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	resp, err := h.service.ListJobMatches(c.Context(), candidateID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// MatchJob scores one job against one candidate
// GET /api/v1/jobs/:job_id/match/:candidate_id
func (h *MatchHandlers) MatchJob(c *fiber.Ctx) error {
	jobID := kernel.NewJobID(c.Params("job_id"))
	candidateID := kernel.NewCandidateID(c.Params("candidate_id"))

	resp, err := h.service.MatchJobForCandidate(c.Context(), jobID, candidateID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
