package response

import (
	"errors"
	"net/http"

	"github.com/mealroll/console-backend-go/internal/domain/attendance"
	"github.com/mealroll/console-backend-go/internal/domain/auth"
	"github.com/mealroll/console-backend-go/internal/domain/employee"
	"github.com/mealroll/console-backend-go/internal/domain/menu"
	"github.com/mealroll/console-backend-go/internal/domain/report"
	"github.com/mealroll/console-backend-go/internal/pkg/validator"
	"github.com/mealroll/console-backend-go/internal/upstream"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrNoSession):
		Unauthorized(w, "No active session")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Menu domain errors
	case errors.Is(err, menu.ErrMenuNotFound):
		NotFound(w, "Food menu not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrFingerNotRecognized):
		NotFound(w, "Finger ID not recognized")
	case errors.Is(err, attendance.ErrAlreadyRecorded):
		Conflict(w, "Attendance already recorded for today")

	// Report domain errors
	case errors.Is(err, report.ErrUnknownFormat):
		BadRequest(w, "Unknown report format", nil)
	case errors.Is(err, report.ErrInvalidImage):
		BadRequest(w, "Snapshot image could not be decoded", nil)
	case errors.Is(err, report.ErrExportFailed):
		InternalServerError(w, "Failed to render report artifact")

	// Backend errors the console relays
	case errors.Is(err, upstream.ErrUnauthorized):
		Unauthorized(w, "Session rejected by attendance backend")
	case errors.Is(err, upstream.ErrNotFound):
		NotFound(w, "Resource not found on attendance backend")
	case errors.Is(err, upstream.ErrUnavailable):
		BadGateway(w, "Attendance backend unavailable")

	// Default
	default:
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			BadGateway(w, apiErr.Message)
			return
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}
