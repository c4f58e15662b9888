package schedule

import (
	"slices"

	"github.com/hillfarm/workforce-backend-go/internal/pkg/validator"
)

type UpsertScheduleRequest struct {
	WeekStart string    `json:"week_start"` // any date within the target week
	Group     string    `json:"group"`

	MorningStart string `json:"morning_start"`
	MorningEnd   string `json:"morning_end"`
	EveningStart string `json:"evening_start"`
	EveningEnd   string `json:"evening_end"`

	Assignments []ShiftAssignment `json:"assignments"`

	CreatedBy string `json:"-"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}

	if !slices.Contains(WorkGroupValues, r.Group) {
		errs = append(errs, validator.ValidationError{
			Field:   "group",
			Message: "group must be one of: lab, field",
		})
	}

	for field, v := range map[string]string{
		"morning_start": r.MorningStart,
		"morning_end":   r.MorningEnd,
		"evening_start": r.EveningStart,
		"evening_end":   r.EveningEnd,
	} {
		if !validator.IsValidClockTime(v) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	seen := make(map[string]bool, len(r.Assignments))
	for _, a := range r.Assignments {
		if validator.IsEmpty(a.StaffID) {
			errs = append(errs, validator.ValidationError{
				Field:   "assignments",
				Message: "assignment staff_id is required",
			})
			continue
		}
		if seen[a.StaffID] {
			errs = append(errs, validator.ValidationError{
				Field:   "assignments",
				Message: "duplicate assignment for staff " + a.StaffID,
			})
		}
		seen[a.StaffID] = true
		if a.ShiftType != ShiftTypeMorning && a.ShiftType != ShiftTypeEvening {
			errs = append(errs, validator.ValidationError{
				Field:   "assignments",
				Message: "shift_type must be Morning or Evening",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResolveShiftRequest struct {
	StaffID string
	Group   string
	Date    string // YYYY-MM-DD, defaults to today
}

type ScheduleResponse struct {
	ID        string `json:"id"`
	WeekStart string `json:"week_start"`
	Group     string `json:"group"`

	MorningStart string `json:"morning_start"`
	MorningEnd   string `json:"morning_end"`
	EveningStart string `json:"evening_start"`
	EveningEnd   string `json:"evening_end"`

	Assignments []ShiftAssignment `json:"assignments"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ShiftWindowResponse struct {
	Date      string `json:"date"`
	StaffID   string `json:"staff_id"`
	ShiftType string `json:"shift_type"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Fallback  bool   `json:"fallback"`
}
