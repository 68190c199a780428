package applicationsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/recruitment/application"
	"github.com/talentgate/talentgate/recruitment/candidate"
	"github.com/talentgate/talentgate/recruitment/job"
	"github.com/talentgate/talentgate/recruitment/matching/matchsrv"
)

// ApplicationService provides business operations for applications
type ApplicationService struct {
	applicationRepo application.Repository
	candidateRepo   candidate.Repository
	jobRepo         job.Repository
	matchService    *matchsrv.Service
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	candidateRepo candidate.Repository,
	jobRepo job.Repository,
	matchService *matchsrv.Service,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		jobRepo:         jobRepo,
		matchService:    matchService,
	}
}

// Apply submits a candidate's application to a job. The candidate's profile
// is scored against the posting at submission time and the result is stored
// on the application row.
func (s *ApplicationService) Apply(ctx context.Context, req application.ApplyRequest) (*application.Application, error) {
	// Validate candidate exists and is active
	candidateEntity, err := s.candidateRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", req.CandidateID.String())
	}

	if !candidateEntity.CanApplyToJob() {
		return nil, application.ErrCandidateCannotApply().
			WithDetail("candidate_id", req.CandidateID.String()).
			WithDetail("status", candidateEntity.Status)
	}

	// Validate job exists and accepts applications
	jobEntity, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", req.JobID.String())
	}

	if !jobEntity.AcceptsApplications() {
		return nil, application.ErrJobNotPublished().
			WithDetail("job_id", req.JobID.String()).
			WithDetail("status", jobEntity.Status)
	}

	// Business rule: Check for duplicate application
	exists, err := s.applicationRepo.ExistsByJobAndCandidate(ctx, req.JobID, req.CandidateID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check duplicate application", errx.TypeInternal)
	}

	if exists {
		return nil, application.ErrApplicationAlreadyExists().
			WithDetail("job_id", req.JobID.String()).
			WithDetail("candidate_id", req.CandidateID.String())
	}

	// Score the candidate's profile against the posting. Applications without
	// a profile are rejected up front so recruiters never see unranked rows.
	match, err := s.matchService.MatchJobForCandidate(ctx, req.JobID, req.CandidateID)
	if err != nil {
		return nil, application.ErrProfileRequired().
			WithDetail("candidate_id", req.CandidateID.String())
	}

	now := time.Now()
	newApplication := &application.Application{
		ID:           kernel.NewApplicationID(uuid.NewString()),
		JobID:        req.JobID,
		CandidateID:  req.CandidateID,
		CoverLetter:  req.CoverLetter,
		ATSScore:     match.Result.OverallScore,
		MatchDetails: &match.Result,
		Status:       application.ApplicationStatusSubmitted,
		AppliedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.applicationRepo.Create(ctx, newApplication); err != nil {
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	logx.Infof("Application submitted: ID=%s, JobID=%s, CandidateID=%s, Score=%d",
		newApplication.ID, req.JobID, req.CandidateID, newApplication.ATSScore)

	return newApplication, nil
}

// GetApplicationByID retrieves an application by ID
func (s *ApplicationService) GetApplicationByID(ctx context.Context, applicationID kernel.ApplicationID) (*application.ApplicationResponse, error) {
	applicationEntity, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", applicationID.String())
	}

	resp := application.ToApplicationResponse(applicationEntity)
	return &resp, nil
}

// ListApplications retrieves all applications with pagination
func (s *ApplicationService) ListApplications(ctx context.Context, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	applications, err := s.applicationRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	return s.toPaginatedResponse(applications), nil
}

// ListApplicationsByJob retrieves applications for a job, ranked by match
// score with the strongest applicants first
func (s *ApplicationService) ListApplicationsByJob(ctx context.Context, req application.ListApplicationsByJobRequest) (*application.PaginatedRankedApplicationsResponse, error) {
	// Validate job exists
	exists, err := s.jobRepo.Exists(ctx, req.JobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check job existence", errx.TypeInternal)
	}
	if !exists {
		return nil, job.ErrJobNotFound().WithDetail("job_id", req.JobID.String())
	}

	ranked, err := s.applicationRepo.ListRankedByJobID(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications for job", errx.TypeInternal)
	}

	return ranked, nil
}

// ListApplicationsByCandidate retrieves applications for a specific candidate
func (s *ApplicationService) ListApplicationsByCandidate(ctx context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	applications, err := s.applicationRepo.ListByCandidateID(ctx, candidateID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications for candidate", errx.TypeInternal)
	}

	return s.toPaginatedResponse(applications), nil
}

// ListApplicationsByReviewer retrieves applications assigned to a reviewer
func (s *ApplicationService) ListApplicationsByReviewer(ctx context.Context, reviewerID kernel.UserID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	applications, err := s.applicationRepo.ListByReviewer(ctx, reviewerID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications for reviewer", errx.TypeInternal)
	}

	return s.toPaginatedResponse(applications), nil
}

// UpdateApplicationStatus moves an application through the review pipeline
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, applicationID kernel.ApplicationID, req application.UpdateStatusRequest) (*application.Application, error) {
	applicationEntity, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", applicationID.String())
	}

	if err := applicationEntity.UpdateStatus(req.Status); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, applicationID, applicationEntity); err != nil {
		return nil, errx.Wrap(err, "failed to update application status", errx.TypeInternal)
	}

	logx.Infof("Application status updated: ID=%s, Status=%s", applicationID, req.Status)

	return applicationEntity, nil
}

// AssignReviewer assigns a reviewer to an application
func (s *ApplicationService) AssignReviewer(ctx context.Context, applicationID kernel.ApplicationID, reviewerID kernel.UserID) (*application.Application, error) {
	applicationEntity, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", applicationID.String())
	}

	if err := applicationEntity.AssignReviewer(reviewerID); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, applicationID, applicationEntity); err != nil {
		return nil, errx.Wrap(err, "failed to assign reviewer", errx.TypeInternal)
	}

	return applicationEntity, nil
}

// WithdrawApplication withdraws an application on the candidate's behalf
func (s *ApplicationService) WithdrawApplication(ctx context.Context, applicationID kernel.ApplicationID) (*application.Application, error) {
	applicationEntity, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", applicationID.String())
	}

	if err := applicationEntity.Withdraw(); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, applicationID, applicationEntity); err != nil {
		return nil, errx.Wrap(err, "failed to withdraw application", errx.TypeInternal)
	}

	return applicationEntity, nil
}

// ArchiveApplication archives an application
func (s *ApplicationService) ArchiveApplication(ctx context.Context, applicationID kernel.ApplicationID) error {
	applicationEntity, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("application_id", applicationID.String())
	}

	if err := applicationEntity.Archive(); err != nil {
		return err
	}

	if err := s.applicationRepo.Update(ctx, applicationID, applicationEntity); err != nil {
		return errx.Wrap(err, "failed to archive application", errx.TypeInternal)
	}

	return nil
}

// UnarchiveApplication unarchives an application
func (s *ApplicationService) UnarchiveApplication(ctx context.Context, applicationID kernel.ApplicationID) error {
	applicationEntity, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("application_id", applicationID.String())
	}

	if err := applicationEntity.Unarchive(); err != nil {
		return err
	}

	if err := s.applicationRepo.Update(ctx, applicationID, applicationEntity); err != nil {
		return errx.Wrap(err, "failed to unarchive application", errx.TypeInternal)
	}

	return nil
}

// DeleteApplication deletes an application
func (s *ApplicationService) DeleteApplication(ctx context.Context, applicationID kernel.ApplicationID) error {
	exists, err := s.applicationRepo.Exists(ctx, applicationID)
	if err != nil {
		return errx.Wrap(err, "failed to check application existence", errx.TypeInternal)
	}
	if !exists {
		return application.ErrApplicationNotFound().WithDetail("application_id", applicationID.String())
	}

	if err := s.applicationRepo.Delete(ctx, applicationID); err != nil {
		return errx.Wrap(err, "failed to delete application", errx.TypeInternal)
	}

	return nil
}

// GetApplicationStats retrieves statistics for an application
func (s *ApplicationService) GetApplicationStats(ctx context.Context, applicationID kernel.ApplicationID) (*application.ApplicationStatsResponse, error) {
	applicationEntity, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", applicationID.String())
	}

	stats := &application.ApplicationStatsResponse{
		ApplicationID: applicationID,
		Status:        applicationEntity.Status,
		ATSScore:      applicationEntity.ATSScore,
		IsArchived:    applicationEntity.IsArchived(),
		HasReviewer:   applicationEntity.HasReviewer(),
		AppliedAt:     applicationEntity.AppliedAt,
		UpdatedAt:     applicationEntity.UpdatedAt,
	}

	stats.DaysSinceSubmission = int(time.Since(applicationEntity.AppliedAt).Hours() / 24)
	stats.DaysSinceLastUpdate = int(time.Since(applicationEntity.UpdatedAt).Hours() / 24)

	if applicationEntity.StatusChangedAt != nil {
		days := int(time.Since(*applicationEntity.StatusChangedAt).Hours() / 24)
		stats.DaysSinceStatusChange = &days
	}

	return stats, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *ApplicationService) toPaginatedResponse(applications *kernel.Paginated[application.Application]) *application.PaginatedApplicationsResponse {
	responses := make([]application.ApplicationResponse, 0, len(applications.Items))
	for i := range applications.Items {
		responses = append(responses, application.ToApplicationResponse(&applications.Items[i]))
	}

	return &kernel.Paginated[application.ApplicationResponse]{
		Items: responses,
		Page:  applications.Page,
		Empty: applications.Empty,
	}
}
