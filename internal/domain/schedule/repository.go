package schedule

import (
	"context"
	"time"
)

// ScheduleRepository defines data access methods for weekly shift schedules.
type ScheduleRepository interface {
	// Upsert creates or replaces the schedule for (week_start, group)
	Upsert(ctx context.Context, s WeeklySchedule) (WeeklySchedule, error)

	// GetByWeekAndGroup retrieves the schedule for an exact Sunday week
	// start and group. Callers normalize the date with WeekStartOf first.
	GetByWeekAndGroup(ctx context.Context, weekStart time.Time, group WorkGroup) (*WeeklySchedule, error)

	// ListByWeek retrieves all group schedules for a week
	ListByWeek(ctx context.Context, weekStart time.Time) ([]WeeklySchedule, error)
}
