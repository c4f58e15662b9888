package schedule

import "time"

type ShiftType string

const (
	ShiftTypeMorning ShiftType = "Morning"
	ShiftTypeEvening ShiftType = "Evening"
)

type WorkGroup string

const (
	WorkGroupLab   WorkGroup = "lab"
	WorkGroupField WorkGroup = "field"
)

var WorkGroupValues = []string{
	string(WorkGroupLab),
	string(WorkGroupField),
}

// ShiftAssignment binds one staff member to a shift slot within a week.
type ShiftAssignment struct {
	StaffID   string    `json:"staff_id"`
	ShiftType ShiftType `json:"shift_type"`
}

// WeeklySchedule is the shift plan for one work group over one week.
// WeekStart is always the Sunday 00:00 local date of the week it covers;
// there is at most one schedule per (week_start, group) pair.
type WeeklySchedule struct {
	ID        string
	WeekStart time.Time
	Group     WorkGroup

	MorningStart string // "HH:MM"
	MorningEnd   string
	EveningStart string
	EveningEnd   string

	Assignments []ShiftAssignment

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssignmentFor returns the assignment for staffID, if any.
func (s WeeklySchedule) AssignmentFor(staffID string) (ShiftAssignment, bool) {
	for _, a := range s.Assignments {
		if a.StaffID == staffID {
			return a, true
		}
	}
	return ShiftAssignment{}, false
}

// ShiftWindow is the resolved clock window a staff member is expected to
// work on a given date.
type ShiftWindow struct {
	Date      time.Time
	StaffID   string
	ShiftType ShiftType
	Start     string // "HH:MM"
	End       string
	// Fallback is true when no schedule or assignment covered the date
	// and the default window was applied instead.
	Fallback bool
}

// WeekStartOf returns the Sunday 00:00 of the week containing t, in t's
// location.
func WeekStartOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}
