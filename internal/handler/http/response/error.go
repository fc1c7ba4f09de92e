package response

import (
	"errors"
	"net/http"

	"github.com/hris-system/hris-backend-go/internal/domain/attendance"
	"github.com/hris-system/hris-backend-go/internal/domain/auth"
	"github.com/hris-system/hris-backend-go/internal/domain/division"
	"github.com/hris-system/hris-backend-go/internal/domain/leave"
	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
	"github.com/hris-system/hris-backend-go/internal/domain/user"
	"github.com/hris-system/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is retired")

	// Users and divisions
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrHRAccessRequired),
		errors.Is(err, user.ErrFinanceAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, division.ErrDivisionNotFound):
		NotFound(w, "Division not found")
	case errors.Is(err, division.ErrDivisionNameExists):
		Conflict(w, "Division name already exists")
	case errors.Is(err, division.ErrDivisionNotEmpty):
		Conflict(w, "Division still has active members")

	// Attendance
	case errors.Is(err, attendance.ErrOutsideRadius):
		UnprocessableEntity(w, "OUTSIDE_RADIUS", err.Error())
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No clock-in recorded today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoActiveConfig):
		Conflict(w, "Attendance configuration has not been set up")

	// Leave
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrConfigNotFound):
		NotFound(w, "Leave configuration not found")

	// Payroll
	case errors.Is(err, payroll.ErrRuleNotFound):
		NotFound(w, "Deduction rule not found")
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPeriodLocked):
		Conflict(w, "Payroll period already sent to finance or paid")
	case errors.Is(err, payroll.ErrNothingToSubmit):
		Conflict(w, "No draft payroll records for this period")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Payroll record is not awaiting payment")
	case errors.Is(err, payroll.ErrNoEmployees):
		Conflict(w, "No active employees to generate payroll for")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
