package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/core"
	"github.com/nipun-munasinghe/Breathsafe-App-sub000/pkg/lifecycle"
)

// writeServiceError maps domain errors onto HTTP statuses. Validation errors
// keep their field map so the caller can render inline messages; transition
// and availability violations are conflicts, since the client checked a state
// that moved underneath it.
func writeServiceError(c *gin.Context, err error) {
	var fieldErrs lifecycle.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fieldErrs})
		return
	}

	var notEditable *lifecycle.NotEditableError
	var invalidTransition *lifecycle.InvalidTransitionError
	var sensorUnavailable *lifecycle.SensorUnavailableError
	switch {
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
	case errors.Is(err, core.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &notEditable),
		errors.As(err, &invalidTransition),
		errors.As(err, &sensorUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
