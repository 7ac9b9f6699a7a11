package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ValidateBody runs struct validation on payload. Field errors are answered with
// 400 {"validation_errors": {...}}, anything else with 400 {"error": "Invalid request body"}.
// Returns false when a response has been written.
func ValidateBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, validate *validator.Validate, payload any) bool {
	err := validate.Struct(payload)
	if err == nil {
		return true
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errorResponse := make(map[string]string, len(validationErrors))
		for _, fieldErr := range validationErrors {
			// fieldErr.Tag() returns "required", "max", etc.
			errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
		}
		logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
		RespondJSON(w, logger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
		return false
	}
	logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
	RespondError(w, logger, http.StatusBadRequest, "Invalid request body")
	return false
}
