package matching

import (
	"net/http"

	"github.com/talentgate/talentgate/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("MATCH")

// Error codes
var (
	CodeMatchFailed      = ErrRegistry.Register("FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to compute match")
	CodeProfileRequired  = ErrRegistry.Register("PROFILE_REQUIRED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Candidate has no profile to match against")
	CodeCacheUnavailable = ErrRegistry.Register("CACHE_UNAVAILABLE", errx.TypeInternal, http.StatusServiceUnavailable, "Match cache is unavailable")
)

func ErrMatchFailed() *errx.Error {
	return ErrRegistry.New(CodeMatchFailed)
}

func ErrProfileRequired() *errx.Error {
	return ErrRegistry.New(CodeProfileRequired)
}

func ErrCacheUnavailable() *errx.Error {
	return ErrRegistry.New(CodeCacheUnavailable)
}
