package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/hillfarm/workforce-backend-go/internal/config"
	"github.com/hillfarm/workforce-backend-go/internal/domain/attendance"
	"github.com/hillfarm/workforce-backend-go/internal/domain/schedule"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/periodlock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	scheduleService schedule.ScheduleService
	cfg             config.AttendanceConfig
	locks           *periodlock.KeyMutex

	// now is replaceable in tests
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	scheduleService schedule.ScheduleService,
	cfg config.AttendanceConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		scheduleService:      scheduleService,
		cfg:                  cfg,
		locks:                periodlock.New(),
		now:                  time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

// Mark implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Location.Accuracy > a.cfg.MaxAccuracyMeters {
		return attendance.AttendanceResponse{}, attendance.ErrLowLocationAccuracy
	}

	now := a.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// One writer per staff member and day keeps the two events of a day
	// race free across concurrent marks.
	lockKey := fmt.Sprintf("%s:%s", req.StaffID, today.Format("2006-01-02"))
	a.locks.Lock(lockKey)
	defer a.locks.Unlock(lockKey)

	existing, err := a.AttendanceRepository.GetByStaffAndDate(ctx, req.StaffID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	switch req.Type {
	case attendance.EventCheckIn:
		if existing != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return a.checkIn(ctx, req, now, today)
	default:
		if existing == nil {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return a.checkOut(ctx, *existing, req, now)
	}
}

func (a *AttendanceServiceImpl) checkIn(ctx context.Context, req attendance.MarkRequest, now, today time.Time) (attendance.AttendanceResponse, error) {
	window, err := a.scheduleService.ResolveShift(ctx, schedule.ResolveShiftRequest{
		StaffID: req.StaffID,
		Group:   req.Group,
		Date:    today.Format("2006-01-02"),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve shift: %w", err)
	}

	shiftStart, err := clockOn(today, window.Start)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse shift start: %w", err)
	}

	allowedFrom := shiftStart.Add(time.Duration(a.cfg.CheckInDelayMinutes) * time.Minute)
	if now.Before(allowedFrom) {
		return attendance.AttendanceResponse{}, &attendance.TooEarlyError{AllowedFrom: allowedFrom}
	}

	// Lateness is stamped once, here; later schedule edits never change it.
	isLate := now.After(shiftStart.Add(time.Duration(a.cfg.LateGraceMinutes) * time.Minute))

	loc := req.Location
	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		StaffID:         req.StaffID,
		Group:           req.Group,
		Date:            today,
		ShiftType:       schedule.ShiftType(window.ShiftType),
		ShiftStart:      window.Start,
		ShiftEnd:        window.End,
		Fallback:        window.Fallback,
		CheckInAt:       &now,
		IsLate:          isLate,
		CheckInLocation: &loc,
		CheckInPhotoURL: req.PhotoURL,
		Status:          attendance.StatusPending,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(created), nil
}

func (a *AttendanceServiceImpl) checkOut(ctx context.Context, existing attendance.Attendance, req attendance.MarkRequest, now time.Time) (attendance.AttendanceResponse, error) {
	if existing.CheckOutAt != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	loc := req.Location
	existing.CheckOutAt = &now
	existing.CheckOutLocation = &loc
	existing.CheckOutPhotoURL = req.PhotoURL

	if err := a.AttendanceRepository.Update(ctx, existing); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	return toAttendanceResponse(existing), nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	return a.list(ctx, filter)
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, staffID string, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	filter.StaffID = staffID
	return a.list(ctx, filter)
}

func (a *AttendanceServiceImpl) list(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Records:    make([]attendance.AttendanceResponse, 0, len(records)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, r := range records {
		resp.Records = append(resp.Records, toAttendanceResponse(r))
	}

	return resp, nil
}

// Verify implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Verify(ctx context.Context, req attendance.VerifyRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if record.Status != attendance.StatusPending {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyVerified
	}

	now := a.now()
	record.VerifiedBy = &req.VerifiedBy
	record.VerifiedAt = &now
	if req.Approve {
		record.Status = attendance.StatusApproved
	} else {
		record.Status = attendance.StatusRejected
		record.RejectionReason = &req.RejectionReason
	}

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to verify attendance: %w", err)
	}

	return toAttendanceResponse(record), nil
}

// clockOn anchors an "HH:MM" clock time onto a calendar day.
func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:               a.ID,
		StaffID:          a.StaffID,
		Group:            a.Group,
		Date:             a.Date.Format("2006-01-02"),
		ShiftType:        string(a.ShiftType),
		ShiftStart:       a.ShiftStart,
		ShiftEnd:         a.ShiftEnd,
		Fallback:         a.Fallback,
		CheckInAt:        timePtrToString(a.CheckInAt),
		CheckOutAt:       timePtrToString(a.CheckOutAt),
		IsLate:           a.IsLate,
		CheckInLocation:  a.CheckInLocation,
		CheckOutLocation: a.CheckOutLocation,
		CheckInPhotoURL:  a.CheckInPhotoURL,
		CheckOutPhotoURL: a.CheckOutPhotoURL,
		Status:           string(a.Status),
		RejectionReason:  a.RejectionReason,
		WorkedHours:      a.WorkedHours(),
	}
}
