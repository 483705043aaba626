package response

import (
	"errors"
	"net/http"

	"github.com/timewatch/timewatch-backend-go/internal/domain/auth"
	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/domain/punch"
	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "Account is inactive")

	// Authorization errors
	case errors.Is(err, report.ErrUnauthorized),
		errors.Is(err, punch.ErrUnauthorized),
		errors.Is(err, user.ErrUnauthorized),
		errors.Is(err, company.ErrUnauthorized):
		Forbidden(w, "You are not allowed to perform this action")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists")

	// Punch domain errors
	case errors.Is(err, punch.ErrEventNotFound):
		NotFound(w, "Punch event not found")
	case errors.Is(err, punch.ErrAlreadyPunchedIn):
		Conflict(w, "An open punch event already exists for this day")
	case errors.Is(err, punch.ErrNoOpenEvent):
		BadRequest(w, "No open punch event to close", nil)
	case errors.Is(err, punch.ErrPunchOutBeforePunchIn):
		BadRequest(w, "Punch-out must not precede punch-in", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
