package job

import (
	"net/http"

	"github.com/talentgate/talentgate/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound         = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeJobAlreadyExists    = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Job already exists")
	CodeJobArchived         = ErrRegistry.Register("ARCHIVED", errx.TypeBusiness, http.StatusForbidden, "Job is archived")
	CodeJobNotArchived      = ErrRegistry.Register("NOT_ARCHIVED", errx.TypeBusiness, http.StatusBadRequest, "Job is not archived")
	CodeJobAlreadyArchived  = ErrRegistry.Register("ALREADY_ARCHIVED", errx.TypeBusiness, http.StatusConflict, "Job is already archived")
	CodeJobAlreadyPublished = ErrRegistry.Register("ALREADY_PUBLISHED", errx.TypeBusiness, http.StatusConflict, "Job is already published")
	CodeJobNotPublished     = ErrRegistry.Register("NOT_PUBLISHED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Job is not accepting applications")
	CodeJobHasApplications  = ErrRegistry.Register("HAS_APPLICATIONS", errx.TypeBusiness, http.StatusConflict, "Cannot delete job with applications")
	CodeInvalidJobData      = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid job data")
	CodeInvalidSkillWeight  = ErrRegistry.Register("INVALID_SKILL_WEIGHT", errx.TypeValidation, http.StatusBadRequest, "Skill weight must be non-negative")
	CodeCannotPublish       = ErrRegistry.Register("CANNOT_PUBLISH", errx.TypeBusiness, http.StatusBadRequest, "Job cannot be published in current state")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrJobAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyExists)
}

func ErrJobArchived() *errx.Error {
	return ErrRegistry.New(CodeJobArchived)
}

func ErrJobNotArchived() *errx.Error {
	return ErrRegistry.New(CodeJobNotArchived)
}

func ErrJobAlreadyArchived() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyArchived)
}

func ErrJobAlreadyPublished() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyPublished)
}

func ErrJobNotPublished() *errx.Error {
	return ErrRegistry.New(CodeJobNotPublished)
}

func ErrJobHasApplications() *errx.Error {
	return ErrRegistry.New(CodeJobHasApplications)
}

func ErrInvalidJobData() *errx.Error {
	return ErrRegistry.New(CodeInvalidJobData)
}

func ErrInvalidSkillWeight() *errx.Error {
	return ErrRegistry.New(CodeInvalidSkillWeight)
}

func ErrCannotPublish() *errx.Error {
	return ErrRegistry.New(CodeCannotPublish)
}
