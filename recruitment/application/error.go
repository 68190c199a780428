package application

import (
	"net/http"

	"github.com/talentgate/talentgate/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeApplicationAlreadyExists   = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Candidate has already applied to this job")
	CodeApplicationArchived        = ErrRegistry.Register("ARCHIVED", errx.TypeBusiness, http.StatusForbidden, "Application is archived")
	CodeApplicationNotArchived     = ErrRegistry.Register("NOT_ARCHIVED", errx.TypeBusiness, http.StatusBadRequest, "Application is not archived")
	CodeApplicationAlreadyArchived = ErrRegistry.Register("ALREADY_ARCHIVED", errx.TypeBusiness, http.StatusConflict, "Application is already archived")
	CodeCandidateCannotApply       = ErrRegistry.Register("CANDIDATE_CANNOT_APPLY", errx.TypeBusiness, http.StatusForbidden, "Candidate cannot apply to jobs")
	CodeJobNotPublished            = ErrRegistry.Register("JOB_NOT_PUBLISHED", errx.TypeBusiness, http.StatusForbidden, "Job is not published")
	CodeProfileRequired            = ErrRegistry.Register("PROFILE_REQUIRED", errx.TypeBusiness, http.StatusPreconditionFailed, "Candidate has no profile to score against")
	CodeInvalidStatusTransition    = ErrRegistry.Register("INVALID_STATUS_TRANSITION", errx.TypeBusiness, http.StatusBadRequest, "Invalid status transition")
	CodeCannotWithdraw             = ErrRegistry.Register("CANNOT_WITHDRAW", errx.TypeBusiness, http.StatusBadRequest, "Cannot withdraw application in current state")
	CodeInvalidRequest             = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeValidationFailed           = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrApplicationAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeApplicationAlreadyExists)
}

func ErrApplicationArchived() *errx.Error {
	return ErrRegistry.New(CodeApplicationArchived)
}

func ErrApplicationNotArchived() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotArchived)
}

func ErrApplicationAlreadyArchived() *errx.Error {
	return ErrRegistry.New(CodeApplicationAlreadyArchived)
}

func ErrCandidateCannotApply() *errx.Error {
	return ErrRegistry.New(CodeCandidateCannotApply)
}

func ErrJobNotPublished() *errx.Error {
	return ErrRegistry.New(CodeJobNotPublished)
}

func ErrProfileRequired() *errx.Error {
	return ErrRegistry.New(CodeProfileRequired)
}

func ErrInvalidStatusTransition() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatusTransition)
}

func ErrCannotWithdraw() *errx.Error {
	return ErrRegistry.New(CodeCannotWithdraw)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
