package profilesrv

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentgate/talentgate/internal/ai/embeddings"
	"github.com/talentgate/talentgate/pkg/fsx"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/recruitment/profile"
)

const MaxParseAttempts = 3

type Service struct {
	repo        profile.Repository
	jobRepo     profile.JobRepository
	queue       profile.JobQueue
	fs          fsx.FileSystem
	interpreter *Interpreter
	embedGen    *embeddings.Generator
	invalidator profile.MatchInvalidator
}

// NewService creates a new profile service. embedGen and invalidator may be
// nil; the corresponding steps are skipped.
func NewService(
	repo profile.Repository,
	jobRepo profile.JobRepository,
	queue profile.JobQueue,
	fs fsx.FileSystem,
	interpreter *Interpreter,
	embedGen *embeddings.Generator,
	invalidator profile.MatchInvalidator,
) *Service {
	return &Service{
		repo:        repo,
		jobRepo:     jobRepo,
		queue:       queue,
		fs:          fs,
		interpreter: interpreter,
		embedGen:    embedGen,
		invalidator: invalidator,
	}
}

// ============================================================================
// Profile CRUD
// ============================================================================

// UpsertProfile creates or replaces a candidate's profile.
func (s *Service) UpsertProfile(ctx context.Context, req profile.UpsertProfileRequest) (*profile.ProfileResponse, error) {
	if req.CandidateID.IsEmpty() {
		return nil, profile.ErrInvalidProfileData().
			WithDetail("field", "candidate_id")
	}

	req.Data.Normalize()

	now := time.Now()
	p := &profile.Profile{
		CandidateID: req.CandidateID,
		Data:        req.Data,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Preserve upload metadata and creation time when replacing.
	if existing, err := s.repo.GetByCandidateID(ctx, req.CandidateID); err == nil && existing != nil {
		p.CreatedAt = existing.CreatedAt
		p.ResumeURL = existing.ResumeURL
		p.FileName = existing.FileName
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, profile.ErrRegistry.NewWithCause(profile.CodeInvalidProfileData, err).
			WithDetail("candidate_id", req.CandidateID)
	}

	s.refreshEmbedding(ctx, p)
	s.invalidateMatches(ctx, req.CandidateID)

	return profile.ToProfileResponse(p), nil
}

// GetProfile retrieves a candidate's profile.
func (s *Service) GetProfile(ctx context.Context, id kernel.CandidateID) (*profile.ProfileResponse, error) {
	p, err := s.repo.GetByCandidateID(ctx, id)
	if err != nil {
		return nil, profile.ErrProfileNotFound().
			WithDetail("candidate_id", id)
	}
	return profile.ToProfileResponse(p), nil
}

// DeleteProfile removes a candidate's profile and cached match scores.
func (s *Service) DeleteProfile(ctx context.Context, id kernel.CandidateID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return profile.ErrProfileNotFound().
			WithDetail("candidate_id", id)
	}
	s.invalidateMatches(ctx, id)
	return nil
}

// ============================================================================
// Resume parsing
// ============================================================================

// ParseResumeText interprets raw resume text synchronously and stores the
// resulting profile.
func (s *Service) ParseResumeText(ctx context.Context, req profile.ParseResumeTextRequest) (*profile.ParseResumeTextResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, profile.ErrEmptyResumeText().
			WithDetail("candidate_id", req.CandidateID)
	}

	parsed, usedAI := s.interpreter.Interpret(ctx, req.Text)

	resp, err := s.UpsertProfile(ctx, profile.UpsertProfileRequest{
		CandidateID: req.CandidateID,
		Data:        parsed,
	})
	if err != nil {
		return nil, err
	}

	logx.Infof("Resume text parsed: CandidateID=%s, UsedAI=%v, Skills=%d",
		req.CandidateID, usedAI, len(parsed.Skills))

	return &profile.ParseResumeTextResponse{
		CandidateID: resp.CandidateID,
		Profile:     resp.Data,
		UsedAI:      usedAI,
	}, nil
}

// refreshEmbedding regenerates the profile embedding used for job
// recommendations. Failures are logged, never propagated; the profile itself
// is already stored.
func (s *Service) refreshEmbedding(ctx context.Context, p *profile.Profile) {
	if s.embedGen == nil {
		return
	}

	text := FormatProfileForEmbedding(&p.Data)
	if strings.TrimSpace(text) == "" {
		return
	}

	vector, err := s.embedGen.Generate(ctx, text)
	if err != nil {
		logx.Errorf("Failed to generate profile embedding: CandidateID=%s, error=%v", p.CandidateID, err)
		return
	}

	if err := s.repo.UpdateEmbedding(ctx, p.CandidateID, kernel.ProfileEmbedding(vector)); err != nil {
		logx.Errorf("Failed to store profile embedding: CandidateID=%s, error=%v", p.CandidateID, err)
	}
}

func (s *Service) invalidateMatches(ctx context.Context, id kernel.CandidateID) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateCandidate(ctx, id); err != nil {
		logx.Warnf("Failed to invalidate cached matches: CandidateID=%s, error=%v", id, err)
	}
}

// FormatProfileForEmbedding flattens a profile into the text that gets
// embedded for semantic job recommendations.
func FormatProfileForEmbedding(p *profile.CandidateProfile) string {
	var sb strings.Builder

	if p.PersonalInfo.Name != "" {
		sb.WriteString(fmt.Sprintf("Name: %s\n", p.PersonalInfo.Name))
	}
	if p.Summary != "" {
		sb.WriteString(fmt.Sprintf("Summary: %s\n", p.Summary))
	}

	if len(p.Experience) > 0 {
		sb.WriteString("Experience:\n")
		for _, e := range p.Experience {
			sb.WriteString(fmt.Sprintf("- %s at %s", e.Title, e.Company))
			if e.Description != "" {
				sb.WriteString(": " + e.Description)
			}
			sb.WriteString("\n")
		}
	}

	if len(p.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, e := range p.Education {
			sb.WriteString(fmt.Sprintf("- %s, %s\n", e.Degree, e.School))
		}
	}

	if len(p.Skills) > 0 {
		sb.WriteString("Skills: " + strings.Join(p.SkillNames(), ", ") + "\n")
	}

	if len(p.Languages) > 0 {
		names := make([]string, 0, len(p.Languages))
		for _, l := range p.Languages {
			names = append(names, l.Name)
		}
		sb.WriteString("Languages: " + strings.Join(names, ", ") + "\n")
	}

	return sb.String()
}
