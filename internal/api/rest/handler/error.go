package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cipherline/cipherline-server/internal/apperr"
	"github.com/cipherline/cipherline-server/internal/model"
)

// handleError renders a service error as a JSON response. Unrecognized
// errors collapse to a generic 500 so internals never leak.
func handleError(c *gin.Context, err error) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		c.JSON(statusFor(appErr.Code), gin.H{"error": appErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeInvalidArgument, apperr.CodeInvalidParticipants, apperr.CodeAlreadyExists:
		return http.StatusBadRequest
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
