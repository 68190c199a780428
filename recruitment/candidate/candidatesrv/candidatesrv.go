package candidatesrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/recruitment/candidate"
	"github.com/talentgate/talentgate/recruitment/profile"
)

// CandidateService provides business operations for candidates
type CandidateService struct {
	candidateRepo candidate.Repository
	profileRepo   profile.Repository
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(
	candidateRepo candidate.Repository,
	profileRepo profile.Repository,
) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		profileRepo:   profileRepo,
	}
}

// CreateCandidate registers a new candidate
func (s *CandidateService) CreateCandidate(ctx context.Context, req candidate.CreateCandidateRequest) (*candidate.Candidate, error) {
	// Check for existing candidate by email
	existingByEmail, err := s.candidateRepo.GetByEmail(ctx, req.Email)
	if err == nil && existingByEmail != nil {
		return nil, candidate.ErrCandidateAlreadyExists().
			WithDetail("email", string(req.Email)).
			WithDetail("existing_id", existingByEmail.ID.String())
	}

	newCandidate := candidate.New(
		kernel.NewCandidateID(uuid.NewString()),
		req.Email,
		req.Phone,
		req.FirstName,
		req.LastName,
	)

	// Save candidate
	if err := s.candidateRepo.Create(ctx, newCandidate); err != nil {
		return nil, errx.Wrap(err, "failed to create candidate", errx.TypeInternal)
	}

	return newCandidate, nil
}

// GetCandidateByID retrieves a candidate by ID
func (s *CandidateService) GetCandidateByID(ctx context.Context, candidateID kernel.CandidateID) (*candidate.CandidateResponse, error) {
	candidateEntity, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	resp := candidate.ToCandidateResponse(candidateEntity)
	return &resp, nil
}

// GetCandidateByEmail retrieves a candidate by email
func (s *CandidateService) GetCandidateByEmail(ctx context.Context, email kernel.Email) (*candidate.CandidateResponse, error) {
	candidateEntity, err := s.candidateRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("email", string(email))
	}

	resp := candidate.ToCandidateResponse(candidateEntity)
	return &resp, nil
}

// GetCandidateDetails retrieves a candidate together with application and profile info
func (s *CandidateService) GetCandidateDetails(ctx context.Context, candidateID kernel.CandidateID) (*candidate.CandidateDetailsResponse, error) {
	candidateEntity, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	applicationCount, err := s.candidateRepo.CountApplications(ctx, candidateID)
	if err != nil {
		logx.Warnf("Failed to count applications for candidate %s: %v", candidateID, err)
		applicationCount = 0
	}

	lastApplicationAt, err := s.candidateRepo.LastApplicationAt(ctx, candidateID)
	if err != nil {
		lastApplicationAt = nil
	}

	hasProfile := false
	if s.profileRepo != nil {
		exists, err := s.profileRepo.Exists(ctx, candidateID)
		if err != nil {
			logx.Warnf("Failed to check profile for candidate %s: %v", candidateID, err)
		} else {
			hasProfile = exists
		}
	}

	return &candidate.CandidateDetailsResponse{
		Candidate:         candidate.ToCandidateResponse(candidateEntity),
		ApplicationCount:  applicationCount,
		LastApplicationAt: lastApplicationAt,
		HasProfile:        hasProfile,
	}, nil
}

// ListCandidates retrieves all candidates with pagination
func (s *CandidateService) ListCandidates(ctx context.Context, pagination kernel.PaginationOptions) (*candidate.PaginatedCandidatesResponse, error) {
	candidates, err := s.candidateRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}

	return s.toPaginatedResponse(candidates), nil
}

// SearchCandidates searches candidates by various criteria
func (s *CandidateService) SearchCandidates(ctx context.Context, req candidate.SearchCandidatesRequest) (*candidate.PaginatedCandidatesResponse, error) {
	candidates, err := s.candidateRepo.Search(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search candidates", errx.TypeInternal)
	}

	return s.toPaginatedResponse(candidates), nil
}

// ListArchivedCandidates retrieves archived candidates with pagination
func (s *CandidateService) ListArchivedCandidates(ctx context.Context, pagination kernel.PaginationOptions) (*candidate.PaginatedCandidatesResponse, error) {
	candidates, err := s.candidateRepo.ListArchived(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list archived candidates", errx.TypeInternal)
	}

	return s.toPaginatedResponse(candidates), nil
}

// UpdateCandidate updates an existing candidate
func (s *CandidateService) UpdateCandidate(ctx context.Context, candidateID kernel.CandidateID, req candidate.UpdateCandidateRequest) (*candidate.Candidate, error) {
	// Get existing candidate
	candidateEntity, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	// Business rule: Can't update archived candidates
	if candidateEntity.IsArchived() {
		return nil, candidate.ErrCandidateArchived().WithDetail("candidate_id", candidateID.String())
	}

	// Track if any changes were made
	updated := false

	// Update fields if provided
	if req.Email != nil && *req.Email != candidateEntity.Email {
		// Check for duplicate email
		existingByEmail, err := s.candidateRepo.GetByEmail(ctx, *req.Email)
		if err == nil && existingByEmail != nil && existingByEmail.ID != candidateID {
			return nil, candidate.ErrEmailAlreadyExists().
				WithDetail("email", string(*req.Email)).
				WithDetail("existing_id", existingByEmail.ID.String())
		}
		candidateEntity.Email = *req.Email
		updated = true
	}

	if req.Phone != nil && *req.Phone != candidateEntity.Phone {
		candidateEntity.Phone = *req.Phone
		updated = true
	}

	if req.FirstName != nil && *req.FirstName != candidateEntity.FirstName {
		candidateEntity.FirstName = *req.FirstName
		updated = true
	}

	if req.LastName != nil && *req.LastName != candidateEntity.LastName {
		candidateEntity.LastName = *req.LastName
		updated = true
	}

	if updated {
		candidateEntity.UpdatedAt = time.Now()

		// Save changes
		if err := s.candidateRepo.Update(ctx, candidateID, candidateEntity); err != nil {
			return nil, errx.Wrap(err, "failed to update candidate", errx.TypeInternal)
		}
	}

	return candidateEntity, nil
}

// DeleteCandidate deletes a candidate
func (s *CandidateService) DeleteCandidate(ctx context.Context, candidateID kernel.CandidateID) error {
	// Get candidate
	_, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	// Business rule: Check for active applications
	applicationCount, err := s.candidateRepo.CountApplications(ctx, candidateID)
	if err != nil {
		logx.Warnf("Failed to count applications for candidate %s: %v", candidateID, err)
	}

	if applicationCount > 0 {
		return candidate.ErrCandidateHasApplications().
			WithDetail("candidate_id", candidateID.String()).
			WithDetail("application_count", applicationCount)
	}

	// Delete candidate
	if err := s.candidateRepo.Delete(ctx, candidateID); err != nil {
		return errx.Wrap(err, "failed to delete candidate", errx.TypeInternal)
	}

	// Remove the profile too if one was built for this candidate
	if s.profileRepo != nil {
		if err := s.profileRepo.Delete(ctx, candidateID); err != nil {
			logx.Warnf("Failed to delete profile for candidate %s: %v", candidateID, err)
		}
	}

	return nil
}

// ArchiveCandidate archives a candidate (soft delete alternative)
func (s *CandidateService) ArchiveCandidate(ctx context.Context, candidateID kernel.CandidateID) error {
	// Get candidate
	candidateEntity, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	// Archive candidate
	if err := candidateEntity.Archive(); err != nil {
		return err
	}

	// Save changes
	if err := s.candidateRepo.Update(ctx, candidateID, candidateEntity); err != nil {
		return errx.Wrap(err, "failed to archive candidate", errx.TypeInternal)
	}

	return nil
}

// UnarchiveCandidate unarchives a candidate
func (s *CandidateService) UnarchiveCandidate(ctx context.Context, candidateID kernel.CandidateID) error {
	// Get candidate
	candidateEntity, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	// Unarchive candidate
	if err := candidateEntity.Unarchive(); err != nil {
		return err
	}

	// Save changes
	if err := s.candidateRepo.Update(ctx, candidateID, candidateEntity); err != nil {
		return errx.Wrap(err, "failed to unarchive candidate", errx.TypeInternal)
	}

	return nil
}

// GetCandidateStats retrieves statistics for a candidate
func (s *CandidateService) GetCandidateStats(ctx context.Context, candidateID kernel.CandidateID) (*candidate.CandidateStatsResponse, error) {
	candidateEntity, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	// Count applications
	applicationCount, err := s.candidateRepo.CountApplications(ctx, candidateID)
	if err != nil {
		applicationCount = 0 // Default to 0 on error
	}

	stats := &candidate.CandidateStatsResponse{
		CandidateID:       candidateID,
		FullName:          candidateEntity.FullName(),
		Email:             candidateEntity.Email,
		Status:            candidateEntity.Status,
		TotalApplications: applicationCount,
		IsArchived:        candidateEntity.IsArchived(),
		CreatedAt:         candidateEntity.CreatedAt,
		UpdatedAt:         candidateEntity.UpdatedAt,
	}

	stats.DaysSinceRegistration = candidateEntity.DaysSinceRegistration()

	// Calculate days since last update
	daysSinceUpdate := int(time.Since(candidateEntity.UpdatedAt).Hours() / 24)
	stats.DaysSinceLastUpdate = daysSinceUpdate

	// Calculate days since archived
	if candidateEntity.ArchivedAt != nil {
		daysSinceArchived := int(time.Since(*candidateEntity.ArchivedAt).Hours() / 24)
		stats.DaysSinceArchived = &daysSinceArchived
	}

	return stats, nil
}

// ValidateCandidateExists checks if a candidate exists
func (s *CandidateService) ValidateCandidateExists(ctx context.Context, candidateID kernel.CandidateID) error {
	exists, err := s.candidateRepo.Exists(ctx, candidateID)
	if err != nil {
		return errx.Wrap(err, "failed to check candidate existence", errx.TypeInternal)
	}

	if !exists {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
	}

	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *CandidateService) toPaginatedResponse(candidates *kernel.Paginated[candidate.Candidate]) *candidate.PaginatedCandidatesResponse {
	responses := make([]candidate.CandidateResponse, 0, len(candidates.Items))
	for i := range candidates.Items {
		responses = append(responses, candidate.ToCandidateResponse(&candidates.Items[i]))
	}

	return &kernel.Paginated[candidate.CandidateResponse]{
		Items: responses,
		Page:  candidates.Page,
		Empty: candidates.Empty,
	}
}
