package attendance

import (
	"errors"
	"fmt"
	"time"
)

// Attendance domain errors
var (
	// Mark errors
	ErrAlreadyCheckedIn    = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut   = errors.New("you have already checked out today")
	ErrTooEarlyToCheckIn   = errors.New("too early to check in")
	ErrLowLocationAccuracy = errors.New("location accuracy is too low")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyVerified    = errors.New("attendance has already been approved or rejected")
	ErrNotCheckedIn       = errors.New("you have not checked in yet")
)

// TooEarlyError carries the earliest accepted check-in time so callers
// can tell the staff member when to come back. It matches
// ErrTooEarlyToCheckIn under errors.Is.
type TooEarlyError struct {
	AllowedFrom time.Time
}

func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("attendance can be marked from %s", e.AllowedFrom.Format("15:04"))
}

func (e *TooEarlyError) Unwrap() error { return ErrTooEarlyToCheckIn }
