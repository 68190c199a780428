package profileapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/talentgate/talentgate/internal/textextract"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/validatex"
	"github.com/talentgate/talentgate/recruitment/profile"
	"github.com/talentgate/talentgate/recruitment/profile/profilesrv"
)

const maxResumeSize = 10 * 1024 * 1024 // 10MB

type ProfileHandlers struct {
	service *profilesrv.Service
}

func NewProfileHandlers(service *profilesrv.Service) *ProfileHandlers {
	return &ProfileHandlers{service: service}
}

func (h *ProfileHandlers) RegisterRoutes(app *fiber.App) {
	candidates := app.Group("/api/v1/candidates")

	candidates.Put("/:id/profile", h.UpsertProfile)
	candidates.Get("/:id/profile", h.GetProfile)
	candidates.Delete("/:id/profile", h.DeleteProfile)

	candidates.Post("/:id/resume", h.UploadResume)       // Upload file (ASYNC)
	candidates.Post("/:id/resume/text", h.ParseResumeText) // Parse raw text (sync)
	candidates.Get("/:id/resume/jobs", h.ListJobs)

	app.Get("/api/v1/resume-jobs/:job_id", h.GetJobStatus)
}

// UpsertProfile creates or replaces a candidate's profile
// PUT /api/v1/candidates/:id/profile
func (h *ProfileHandlers) UpsertProfile(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))

	var data profile.CandidateProfile
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	req := profile.UpsertProfileRequest{
		CandidateID: candidateID,
		Data:        data,
	}
	if fields := validatex.Struct(req); fields != nil {
		return profile.ErrInvalidProfileData().WithDetails(fields)
	}

	resp, err := h.service.UpsertProfile(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetProfile retrieves a candidate's profile
// GET /api/v1/candidates/:id/profile
func (h *ProfileHandlers) GetProfile(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))

	resp, err := h.service.GetProfile(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// DeleteProfile removes a candidate's profile
// DELETE /api/v1/candidates/:id/profile
func (h *ProfileHandlers) DeleteProfile(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))

	if err := h.service.DeleteProfile(c.Context(), candidateID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UploadResume accepts a resume file and queues it for background parsing
// POST /api/v1/candidates/:id/resume
func (h *ProfileHandlers) UploadResume(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	if file.Size > maxResumeSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "file too large",
			"max_size": "10MB",
			"size":     file.Size,
		})
	}

	contentType := file.Header.Get("Content-Type")
	if !textextract.Supported(contentType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":           "unsupported file type",
			"supported_types": []string{textextract.MimePDF, textextract.MimeDocx, textextract.MimePlain},
			"detected_type":   contentType,
		})
	}

	uploaded, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer uploaded.Close()

	data, err := io.ReadAll(uploaded)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	req := profile.UploadResumeRequest{
		CandidateID: candidateID,
		FileName:    file.Filename,
		ContentType: contentType,
		Data:        data,
	}
	if fields := validatex.Struct(req); fields != nil {
		return profile.ErrInvalidProfileData().WithDetails(fields)
	}

	resp, err := h.service.UploadResumeAsync(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// ParseResumeText parses raw resume text synchronously
// POST /api/v1/candidates/:id/resume/text
func (h *ProfileHandlers) ParseResumeText(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))

	var body struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	req := profile.ParseResumeTextRequest{
		CandidateID: candidateID,
		Text:        body.Text,
	}
	if fields := validatex.Struct(req); fields != nil {
		return profile.ErrInvalidProfileData().WithDetails(fields)
	}

	resp, err := h.service.ParseResumeText(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetJobStatus retrieves the status of a resume processing job
// GET /api/v1/resume-jobs/:job_id
func (h *ProfileHandlers) GetJobStatus(c *fiber.Ctx) error {
	jobID := kernel.NewParseJobID(c.Params("job_id"))

	resp, err := h.service.GetJobStatus(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListJobs lists resume processing jobs for a candidate
// GET /api/v1/candidates/:id/resume/jobs
func (h *ProfileHandlers) ListJobs(c *fiber.Ctx) error {
	candidateID := kernel.NewCandidateID(c.Params("id"))

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	resp, err := h.service.ListJobs(c.Context(), candidateID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
