package response

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/category"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/loan"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shift"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/unit"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/resource"
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
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrReviewerAccessRequired):
		Forbidden(w, "Manager or owner access required")

	// Inventory domain errors
	case errors.Is(err, category.ErrCategoryNotFound):
		NotFound(w, message(err, "Category not found"))
	case errors.Is(err, category.ErrCategoryInUse):
		Conflict(w, message(err, "Category still has products"))
	case errors.Is(err, unit.ErrUnitNotFound):
		NotFound(w, message(err, "Unit not found"))
	case errors.Is(err, unit.ErrUnitInUse):
		Conflict(w, message(err, "Unit still has products"))

	// Payroll domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, message(err, "Employee not found"))
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, message(err, "Employee code already exists"))
	case errors.Is(err, employee.ErrEmployeeEmailExists):
		Conflict(w, message(err, "Email already registered"))
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, message(err, "Attendance record not found"))
	case errors.Is(err, attendance.ErrAttendanceAlreadyExists):
		Conflict(w, message(err, "Attendance already recorded for this date"))
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, message(err, "Overtime record not found"))
	case errors.Is(err, overtime.ErrOvertimeNotPending):
		Conflict(w, message(err, "Overtime record already processed"))
	case errors.Is(err, overtime.ErrOvertimeNotApproved):
		Conflict(w, message(err, "Overtime must be approved before it is paid"))
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, message(err, "Shift not found"))
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, message(err, "Shift assignment not found"))
	case errors.Is(err, shift.ErrAssignmentAlreadyEnded):
		Conflict(w, message(err, "Shift assignment already ended"))
	case errors.Is(err, shift.ErrEmployeeAlreadyAssigned):
		Conflict(w, message(err, "Employee already assigned to an active shift"))
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, message(err, "Salary advance not found"))
	case errors.Is(err, loan.ErrLoanNotPending):
		Conflict(w, message(err, "Salary advance already processed"))
	case errors.Is(err, dashboard.ErrInvalidMonth):
		BadRequest(w, "month must be in YYYY-MM format", nil)

	default:
		handleUpstreamError(w, err)
	}
}

// handleUpstreamError keeps the status class of a backend failure and shows
// its message, or a generic one.
func handleUpstreamError(w http.ResponseWriter, err error) {
	msg := apiclient.UserMessage(err)

	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadRequest:
			BadRequest(w, msg, apiErr.Details)
		case http.StatusUnauthorized:
			Unauthorized(w, msg)
		case http.StatusForbidden:
			Forbidden(w, msg)
		case http.StatusNotFound:
			NotFound(w, msg)
		case http.StatusConflict:
			Conflict(w, msg)
		case http.StatusUnprocessableEntity:
			ValidationErrorWithMessage(w, msg, apiErr.Details)
		case http.StatusTooManyRequests:
			TooManyRequests(w, msg)
		default:
			slog.Error("Upstream request failed", "status", apiErr.StatusCode, "error", err)
			BadGateway(w, msg)
		}
		return
	}

	switch {
	case errors.Is(err, context.Canceled):
		// The client is gone; nothing useful can be written.
		slog.Debug("Request cancelled by client", "error", err)
	case errors.Is(err, context.DeadlineExceeded):
		GatewayTimeout(w, msg)
	case errors.Is(err, resource.ErrEmptyResponse):
		slog.Error("Upstream returned no record", "error", err)
		BadGateway(w, apiclient.GenericMessage)
	default:
		var netErr net.Error
		if errors.As(err, &netErr) {
			slog.Error("Upstream unreachable", "error", err)
			BadGateway(w, msg)
			return
		}
		slog.Error("Unexpected error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

// message prefers the backend's own wording over the fixed text.
func message(err error, fallback string) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
