package profilesrv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talentgate/talentgate/internal/textextract"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/recruitment/profile"
)

// UploadResumeAsync stores the uploaded file and queues it for background
// parsing. Returns immediately with a job handle.
func (s *Service) UploadResumeAsync(ctx context.Context, req profile.UploadResumeRequest) (*profile.UploadAcceptedResponse, error) {
	logx.Infof("Queueing resume for async processing: CandidateID=%s, File=%s", req.CandidateID, req.FileName)

	if !textextract.Supported(req.ContentType) {
		return nil, profile.ErrInvalidFileFormat().
			WithDetail("content_type", req.ContentType).
			WithDetail("supported_types", []string{textextract.MimePDF, textextract.MimeDocx, textextract.MimePlain})
	}

	filePath := s.fs.Join("resumes", req.CandidateID.String(), req.FileName)
	if err := s.fs.WriteFile(ctx, filePath, req.Data); err != nil {
		return nil, profile.ErrFileReadFailed().
			WithDetail("file_path", filePath).
			WithDetails(map[string]any{"error": err.Error()})
	}

	jobID := kernel.NewParseJobID(uuid.NewString())
	job := &profile.ParseResumeJob{
		ID:           jobID,
		CandidateID:  req.CandidateID,
		Status:       profile.JobStatusPending,
		FilePath:     filePath,
		FileName:     req.FileName,
		ContentType:  req.ContentType,
		AttemptCount: 0,
		MaxAttempts:  MaxParseAttempts,
		CreatedAt:    time.Now(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, profile.ErrJobCreationFailed().
			WithDetail("candidate_id", req.CandidateID).
			WithDetail("file_name", req.FileName).
			WithDetails(map[string]any{"error": err.Error()})
	}

	if err := s.queue.Enqueue(ctx, jobID, job); err != nil {
		_ = s.jobRepo.MarkAsFailed(ctx, jobID, "failed to enqueue", map[string]any{
			"error": err.Error(),
		})

		return nil, profile.ErrQueueEnqueueFailed().
			WithDetail("job_id", jobID).
			WithDetails(map[string]any{"error": err.Error()})
	}

	logx.Infof("Job queued successfully: JobID=%s", jobID)

	return &profile.UploadAcceptedResponse{
		JobID:   jobID,
		Status:  profile.JobStatusPending,
		Message: "Resume queued for processing",
	}, nil
}

// ProcessParseJob - Worker function to process a queued resume
func (s *Service) ProcessParseJob(ctx context.Context, job *profile.ParseResumeJob) error {
	logx.Infof("Processing job: JobID=%s, Attempt=%d/%d", job.ID, job.AttemptCount+1, job.MaxAttempts)

	if err := s.jobRepo.MarkAsProcessing(ctx, job.ID); err != nil {
		return profile.ErrJobUpdateFailed().
			WithDetail("job_id", job.ID).
			WithDetail("status", "processing").
			WithDetails(map[string]any{"error": err.Error()})
	}

	_ = s.jobRepo.UpdateStep(ctx, job.ID, profile.StepReading)

	fileData, err := s.fs.ReadFile(ctx, job.FilePath)
	if err != nil {
		return s.handleJobError(ctx, job, "file_read_failed", err)
	}

	text, err := textextract.Extract(job.ContentType, fileData)
	if err != nil {
		return s.handleJobError(ctx, job, "text_extraction_failed", err)
	}

	_ = s.jobRepo.UpdateStep(ctx, job.ID, profile.StepInterpreting)

	parsed, usedAI := s.interpreter.Interpret(ctx, text)

	_ = s.jobRepo.UpdateStep(ctx, job.ID, profile.StepSaving)

	now := time.Now()
	p := &profile.Profile{
		CandidateID: job.CandidateID,
		Data:        parsed,
		ResumeURL:   kernel.BucketURL(job.FilePath),
		FileName:    job.FileName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if existing, getErr := s.repo.GetByCandidateID(ctx, job.CandidateID); getErr == nil && existing != nil {
		p.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return s.handleJobError(ctx, job, "save_failed", err)
	}

	_ = s.jobRepo.UpdateStep(ctx, job.ID, profile.StepEmbedding)
	s.refreshEmbedding(ctx, p)
	s.invalidateMatches(ctx, job.CandidateID)

	if err := s.jobRepo.MarkAsCompleted(ctx, job.ID); err != nil {
		logx.Errorf("Failed to mark job as completed: %v", err)
		// Profile was stored; don't fail the job over a status update.
	}

	logx.Infof("Job completed successfully: JobID=%s, CandidateID=%s, UsedAI=%v", job.ID, job.CandidateID, usedAI)
	return nil
}

// handleJobError handles job processing errors with retry logic
func (s *Service) handleJobError(ctx context.Context, job *profile.ParseResumeJob, errorType string, err error) error {
	job.AttemptCount++

	errorDetails := map[string]any{
		"error":        err.Error(),
		"error_type":   errorType,
		"attempt":      job.AttemptCount,
		"max_attempts": job.MaxAttempts,
		"file_path":    job.FilePath,
		"file_name":    job.FileName,
	}

	if job.CanRetry() {
		// Exponential backoff: 2^attempt minutes.
		retryDelay := time.Duration(1<<uint(job.AttemptCount)) * time.Minute
		nextRetry := time.Now().Add(retryDelay)
		job.NextRetryAt = &nextRetry

		logx.Warnf("Job failed, will retry: JobID=%s, Attempt=%d/%d, NextRetry=%v, Error=%s",
			job.ID, job.AttemptCount, job.MaxAttempts, nextRetry, errorType)

		if queueErr := s.queue.EnqueueDelayed(ctx, job.ID, job, retryDelay); queueErr != nil {
			logx.Errorf("Failed to enqueue for retry: %v", queueErr)

			_ = s.jobRepo.MarkAsFailed(ctx, job.ID,
				fmt.Sprintf("%s (retry enqueue failed)", errorType),
				errorDetails)

			return profile.ErrJobRetryFailed().
				WithDetail("job_id", job.ID).
				WithDetail("error_type", errorType).
				WithDetails(errorDetails)
		}

		job.ErrorMessage = fmt.Sprintf("%s (will retry)", errorType)
		job.ErrorDetails = errorDetails
		job.Status = profile.JobStatusPending

		if updateErr := s.jobRepo.Update(ctx, job); updateErr != nil {
			logx.Errorf("Failed to update job for retry: %v", updateErr)
		}

		return profile.ErrJobUpdateFailed().
			WithDetail("job_id", job.ID).
			WithDetail("error_type", errorType).
			WithDetail("will_retry", true).
			WithDetail("next_retry_at", nextRetry).
			WithDetails(errorDetails)
	}

	logx.Errorf("Job permanently failed: JobID=%s, Error=%s, Attempts=%d/%d",
		job.ID, errorType, job.AttemptCount, job.MaxAttempts)

	_ = s.jobRepo.MarkAsFailed(ctx, job.ID, errorType, errorDetails)

	return profile.ErrJobMaxRetriesReached().
		WithDetail("job_id", job.ID).
		WithDetail("error_type", errorType).
		WithDetail("final_attempt", job.AttemptCount).
		WithDetails(errorDetails)
}

// GetJobStatus retrieves the current status of a processing job.
func (s *Service) GetJobStatus(ctx context.Context, jobID kernel.ParseJobID) (*profile.JobStatusResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, profile.ErrJobNotFound().
			WithDetail("job_id", jobID)
	}

	resp := profile.ToJobStatusResponse(job)
	if job.Status == profile.JobStatusPending && job.AttemptCount > 0 {
		resp.Message = fmt.Sprintf("Job pending retry (attempt %d/%d)", job.AttemptCount, job.MaxAttempts)
	}
	return resp, nil
}

// ListJobs retrieves processing jobs for a candidate.
func (s *Service) ListJobs(ctx context.Context, id kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[profile.ParseResumeJob], error) {
	jobs, err := s.jobRepo.ListByCandidateID(ctx, id, pagination)
	if err != nil {
		return nil, profile.ErrRegistry.NewWithCause(profile.CodeJobNotFound, err).
			WithDetail("candidate_id", id)
	}
	return jobs, nil
}
