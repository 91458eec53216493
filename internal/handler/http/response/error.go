package response

import (
	"errors"
	"net/http"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/attendance"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/auth"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/company"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/contact"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/expense"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/report"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/stock"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/user"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrOAuthEmailUnknown):
		Unauthorized(w, "No account registered for this Google email")
	case errors.Is(err, auth.ErrResetTokenInvalid):
		BadRequest(w, "Reset token is invalid or expired", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrSuperAdminRequired),
		errors.Is(err, user.ErrAdminRequired),
		errors.Is(err, user.ErrStaffRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "You have not checked in yet")
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		Forbidden(w, "You are outside the allowed station radius")
	case errors.Is(err, attendance.ErrInvalidAction):
		BadRequest(w, "Action must be checkin or checkout", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Sale domain errors
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale record not found")
	case errors.Is(err, sale.ErrNegativeQuantity):
		BadRequest(w, "Sale quantity cannot be negative", nil)
	case errors.Is(err, sale.ErrReadingMismatch):
		BadRequest(w, "Closing reading must not be less than opening reading", nil)

	// Stock domain errors
	case errors.Is(err, stock.ErrStockNotFound):
		NotFound(w, "Stock record not found")
	case errors.Is(err, stock.ErrTankNotFound):
		NotFound(w, "Tank not found")
	case errors.Is(err, stock.ErrExceedsCapacity):
		BadRequest(w, "Received fuel would exceed tank capacity", nil)
	case errors.Is(err, stock.ErrNegativeLevel):
		BadRequest(w, "Stock level cannot be negative", nil)

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense record not found")

	// Company / contact domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company profile not found")
	case errors.Is(err, company.ErrCompanyExists):
		Conflict(w, "Company profile already exists")
	case errors.Is(err, contact.ErrMessageNotFound):
		NotFound(w, "Contact message not found")

	// Report domain errors
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported report format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
