package schedule

import (
	"context"
	"time"
)

// ScheduleService defines business logic for weekly shift schedules and
// shift resolution.
type ScheduleService interface {
	// UpsertSchedule creates or replaces a week's schedule for a group
	UpsertSchedule(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)

	// GetSchedule retrieves the schedule covering a date for a group
	GetSchedule(ctx context.Context, date time.Time, group WorkGroup) (ScheduleResponse, error)

	// ResolveShift resolves the expected work window for a staff member
	// on a date. It never fails on missing data: with no schedule or no
	// assignment it returns the default window flagged as fallback.
	ResolveShift(ctx context.Context, req ResolveShiftRequest) (ShiftWindowResponse, error)
}
