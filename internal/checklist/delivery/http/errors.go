package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jumpnjoy-ops/internal/checklist"
	"jumpnjoy-ops/internal/checklist/repository"
	"jumpnjoy-ops/pkg/response"
)

// respondError maps domain errors to HTTP statuses. Backend failures come
// out as 502 so the UI can offer a retry; everything unexpected stays an
// opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checklist.ErrNoUser):
		response.Unauthorized(c)
	case errors.Is(err, checklist.ErrUnknownItem),
		errors.Is(err, checklist.ErrInvalidDate):
		response.Error(c, err, nil)
	case errors.Is(err, checklist.ErrToggleInFlight):
		response.ErrorWithStatus(c, http.StatusConflict, err)
	case isBackendFailure(err):
		response.ErrorWithStatus(c, http.StatusBadGateway, err)
	default:
		response.InternalError(c, err)
	}
}

func isBackendFailure(err error) bool {
	if repository.IsRetryable(err) {
		return true
	}
	var srvErr *repository.ServerError
	if errors.As(err, &srvErr) {
		return true
	}
	var netErr *repository.NetworkError
	return errors.As(err, &netErr)
}
