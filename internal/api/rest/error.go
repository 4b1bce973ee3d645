package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/brawldash/club-sync/internal/api/shared/errors"
	"github.com/brawldash/club-sync/internal/logger"
)

// errorResponse is the uniform error envelope returned by every endpoint.
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// statusForCode maps an API error code to its HTTP status.
func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes the appropriate status and envelope for an error
// coming out of the executor. Unrecognized errors are logged and masked.
func respondWithError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
		)
		apiErr = apierrors.NewServiceError("Internal server error")
	}

	status := statusForCode(apiErr.Code)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), apiErr,
			zap.String("path", c.Request.URL.Path),
		)
	}
	c.JSON(status, errorResponse{Error: apiErr})
}

func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Error: apierrors.NewBadRequestError(message, details...),
	})
}
