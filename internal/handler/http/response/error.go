package response

import (
	"errors"
	"net/http"

	"github.com/hillfarm/workforce-backend-go/internal/domain/attendance"
	"github.com/hillfarm/workforce-backend-go/internal/domain/payroll"
	"github.com/hillfarm/workforce-backend-go/internal/domain/schedule"
	"github.com/hillfarm/workforce-backend-go/internal/domain/worker"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/validator"
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
	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerAlreadyExists):
		Conflict(w, "Worker already exists for this staff member")
	case errors.Is(err, worker.ErrWorkerInactive):
		Forbidden(w, "Worker is inactive")
	case errors.Is(err, worker.ErrInvalidWageType):
		BadRequest(w, "Invalid wage type", nil)
	case errors.Is(err, worker.ErrNoWageChanges):
		BadRequest(w, "No wage changes provided", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrInvalidGroup):
		BadRequest(w, "Invalid work group", nil)
	case errors.Is(err, schedule.ErrInvalidWeekStart):
		BadRequest(w, "Invalid date", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrTooEarlyToCheckIn):
		var tooEarly *attendance.TooEarlyError
		if errors.As(err, &tooEarly) {
			allowed := tooEarly.AllowedFrom.Format("15:04")
			BadRequest(w, "Attendance can be marked from "+allowed, map[string]string{
				"allowed_from": allowed,
			})
			return
		}
		BadRequest(w, "Too early to check in", nil)
	case errors.Is(err, attendance.ErrLowLocationAccuracy):
		BadRequest(w, "Location accuracy is too low", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in yet", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyVerified):
		Conflict(w, "Attendance already approved or rejected")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSummaryNotFound):
		NotFound(w, "Salary summary not found for this period")
	case errors.Is(err, payroll.ErrSummaryNotComputed):
		NotFound(w, "Salary has not been calculated for this period")
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrInvalidEntryType):
		BadRequest(w, "Invalid payroll entry type", nil)
	case errors.Is(err, payroll.ErrInvalidAmount):
		BadRequest(w, "Entry amount must be greater than zero", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
