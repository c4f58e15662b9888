package attendance

import (
	"github.com/hillfarm/workforce-backend-go/internal/pkg/validator"
)

type MarkRequest struct {
	StaffID  string    `json:"staff_id"`
	Group    string    `json:"group"`
	Type     EventType `json:"type"`
	Location Location  `json:"location"`
	PhotoURL *string   `json:"photo_url,omitempty"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if r.Type != EventCheckIn && r.Type != EventCheckOut {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be checkin or checkout",
		})
	}

	if !validator.IsValidLatitude(r.Location.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "location.latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Location.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "location.longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Location.Accuracy < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "location.accuracy",
			Message: "accuracy must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type VerifyRequest struct {
	AttendanceID    string `json:"-"`
	Approve         bool   `json:"approve"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	VerifiedBy      string `json:"-"`
}

func (r *VerifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if !r.Approve && validator.IsEmpty(r.RejectionReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	StaffID  string
	Group    string
	Status   string
	DateFrom string // YYYY-MM-DD
	DateTo   string
	Page     int
	Limit    int
}

type AttendanceResponse struct {
	ID      string `json:"id"`
	StaffID string `json:"staff_id"`
	Group   string `json:"group,omitempty"`
	Date    string `json:"date"`

	ShiftType  string `json:"shift_type"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
	Fallback   bool   `json:"fallback"`

	CheckInAt  *string `json:"check_in_at,omitempty"`
	CheckOutAt *string `json:"check_out_at,omitempty"`
	IsLate     bool    `json:"is_late"`

	CheckInLocation  *Location `json:"check_in_location,omitempty"`
	CheckOutLocation *Location `json:"check_out_location,omitempty"`
	CheckInPhotoURL  *string   `json:"check_in_photo_url,omitempty"`
	CheckOutPhotoURL *string   `json:"check_out_photo_url,omitempty"`

	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`

	WorkedHours float64 `json:"worked_hours"`
}

type ListAttendanceResponse struct {
	Records    []AttendanceResponse `json:"records"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
