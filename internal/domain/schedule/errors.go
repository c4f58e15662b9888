package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidGroup     = errors.New("invalid work group")
	ErrInvalidWeekStart = errors.New("invalid week start date")
)
