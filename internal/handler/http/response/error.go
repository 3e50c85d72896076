package response

import (
	"errors"
	"net/http"

	"github.com/c-senju/ponto-fazenda/internal/domain/device"
	"github.com/c-senju/ponto-fazenda/internal/domain/punch"
	"github.com/c-senju/ponto-fazenda/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch record not found")
	case errors.Is(err, punch.ErrInvalidTimestamp):
		BadRequest(w, "Invalid punch timestamp", nil)

	// Device domain errors
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
