package profile

import (
	"net/http"

	"github.com/talentgate/talentgate/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("PROFILE")

// Error codes - Profile Operations
var (
	CodeProfileNotFound           = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Profile not found")
	CodeInvalidProfileData        = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid profile data")
	CodeInterpreterUnavailable    = ErrRegistry.Register("INTERPRETER_UNAVAILABLE", errx.TypeExternal, http.StatusServiceUnavailable, "Resume interpreter is unavailable")
	CodeEmbeddingGenerationFailed = ErrRegistry.Register("EMBEDDING_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate embeddings")
	CodeFileReadFailed            = ErrRegistry.Register("FILE_READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to read file")
	CodeInvalidFileFormat         = ErrRegistry.Register("INVALID_FILE_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Invalid file format")
	CodeTextExtractionFailed      = ErrRegistry.Register("TEXT_EXTRACTION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to extract text from file")
	CodeEmptyResumeText           = ErrRegistry.Register("EMPTY_RESUME_TEXT", errx.TypeValidation, http.StatusBadRequest, "Resume text is empty")
)

// Error codes - Job/Queue Operations
var (
	CodeJobNotFound          = ErrRegistry.Register("JOB_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Processing job not found")
	CodeJobMaxRetriesReached = ErrRegistry.Register("JOB_MAX_RETRIES", errx.TypeInternal, http.StatusInternalServerError, "Job exceeded maximum retry attempts")
	CodeQueueEnqueueFailed   = ErrRegistry.Register("QUEUE_ENQUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to enqueue job")
	CodeQueueDequeueFailed   = ErrRegistry.Register("QUEUE_DEQUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to dequeue job")
	CodeQueueConnectionError = ErrRegistry.Register("QUEUE_CONNECTION_ERROR", errx.TypeInternal, http.StatusServiceUnavailable, "Queue service unavailable")
	CodeJobCreationFailed    = ErrRegistry.Register("JOB_CREATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to create job record")
	CodeJobUpdateFailed      = ErrRegistry.Register("JOB_UPDATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to update job status")
	CodeJobRetryFailed       = ErrRegistry.Register("JOB_RETRY_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to schedule job retry")
)

// Helper functions - Profile Operations
func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeProfileNotFound)
}

func ErrInvalidProfileData() *errx.Error {
	return ErrRegistry.New(CodeInvalidProfileData)
}

func ErrInterpreterUnavailable() *errx.Error {
	return ErrRegistry.New(CodeInterpreterUnavailable)
}

func ErrEmbeddingGenerationFailed() *errx.Error {
	return ErrRegistry.New(CodeEmbeddingGenerationFailed)
}

func ErrFileReadFailed() *errx.Error {
	return ErrRegistry.New(CodeFileReadFailed)
}

func ErrInvalidFileFormat() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileFormat)
}

func ErrTextExtractionFailed() *errx.Error {
	return ErrRegistry.New(CodeTextExtractionFailed)
}

func ErrEmptyResumeText() *errx.Error {
	return ErrRegistry.New(CodeEmptyResumeText)
}

// Helper functions - Job/Queue Operations
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrJobMaxRetriesReached() *errx.Error {
	return ErrRegistry.New(CodeJobMaxRetriesReached)
}

func ErrQueueEnqueueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueEnqueueFailed)
}

func ErrQueueDequeueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueDequeueFailed)
}

func ErrQueueConnectionError() *errx.Error {
	return ErrRegistry.New(CodeQueueConnectionError)
}

func ErrJobCreationFailed() *errx.Error {
	return ErrRegistry.New(CodeJobCreationFailed)
}

func ErrJobUpdateFailed() *errx.Error {
	return ErrRegistry.New(CodeJobUpdateFailed)
}

func ErrJobRetryFailed() *errx.Error {
	return ErrRegistry.New(CodeJobRetryFailed)
}
