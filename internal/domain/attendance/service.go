package attendance

import "context"

// AttendanceService defines business logic for attendance marking.
type AttendanceService interface {
	// Mark records the requested attendance event for today: a checkin
	// opens the day's record, a checkout closes it.
	Mark(ctx context.Context, req MarkRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ListAttendance retrieves records with filters (admin view)
	ListAttendance(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)

	// GetMyAttendance retrieves records for one staff member
	GetMyAttendance(ctx context.Context, staffID string, filter ListFilter) (ListAttendanceResponse, error)

	// Verify approves or rejects an attendance record
	Verify(ctx context.Context, req VerifyRequest) (AttendanceResponse, error)
}
