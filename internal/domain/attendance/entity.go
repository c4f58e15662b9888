package attendance

import (
	"time"

	"github.com/hillfarm/workforce-backend-go/internal/domain/schedule"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// EventType names the attendance event a mark request records.
type EventType string

const (
	EventCheckIn  EventType = "checkin"
	EventCheckOut EventType = "checkout"
)

// Location is a GPS fix captured at mark time.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"` // meters
}

// Attendance is one staff member's record for one local date. The shift
// window is snapshotted at check-in so later schedule edits never change
// what the record was judged against.
type Attendance struct {
	ID      string
	StaffID string
	Group   string
	Date    time.Time // local midnight of the attendance day

	ShiftType  schedule.ShiftType
	ShiftStart string // "HH:MM", snapshot of the resolved window
	ShiftEnd   string
	Fallback   bool

	CheckInAt  *time.Time
	CheckOutAt *time.Time
	IsLate     bool

	CheckInLocation  *Location
	CheckOutLocation *Location
	CheckInPhotoURL  *string
	CheckOutPhotoURL *string

	Status          Status
	RejectionReason *string
	VerifiedBy      *string
	VerifiedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultOpenDayHours is credited for a day with a check-in but no
// check-out, so an open session still counts as a standard working day.
const DefaultOpenDayHours = 8

// WorkedHours returns the span between check-in and check-out. A day
// that was never checked into contributes nothing; a day still open
// is credited the standard working day.
func (a Attendance) WorkedHours() float64 {
	if a.CheckInAt == nil {
		return 0
	}
	if a.CheckOutAt == nil {
		return DefaultOpenDayHours
	}
	return a.CheckOutAt.Sub(*a.CheckInAt).Hours()
}
