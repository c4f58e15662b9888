package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByStaffAndDate retrieves the record for a staff member on a
	// local date, nil when none exists. Used to prevent double check-in.
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, a Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)

	// ListByStaffAndPeriod retrieves a staff member's records within
	// [from, to), ordered by date. Feeds the salary calculator.
	ListByStaffAndPeriod(ctx context.Context, staffID string, from, to time.Time) ([]Attendance, error)
}
