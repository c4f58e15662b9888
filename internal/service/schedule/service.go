package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hillfarm/workforce-backend-go/internal/config"
	"github.com/hillfarm/workforce-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
	cfg config.AttendanceConfig
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	cfg config.AttendanceConfig,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ScheduleRepository: scheduleRepo,
		cfg:                cfg,
	}
}

// UpsertSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) UpsertSchedule(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	day, err := time.Parse("2006-01-02", req.WeekStart)
	if err != nil {
		return schedule.ScheduleResponse{}, schedule.ErrInvalidWeekStart
	}

	upserted, err := s.ScheduleRepository.Upsert(ctx, schedule.WeeklySchedule{
		WeekStart:    schedule.WeekStartOf(day),
		Group:        schedule.WorkGroup(req.Group),
		MorningStart: req.MorningStart,
		MorningEnd:   req.MorningEnd,
		EveningStart: req.EveningStart,
		EveningEnd:   req.EveningEnd,
		Assignments:  req.Assignments,
		CreatedBy:    req.CreatedBy,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to upsert schedule: %w", err)
	}

	return toScheduleResponse(upserted), nil
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, date time.Time, group schedule.WorkGroup) (schedule.ScheduleResponse, error) {
	found, err := s.ScheduleRepository.GetByWeekAndGroup(ctx, schedule.WeekStartOf(date), group)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	if found == nil {
		return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
	}

	return toScheduleResponse(*found), nil
}

// ResolveShift implements schedule.ScheduleService. Resolution walks an
// explicit fallback chain: week schedule for the staff member's group,
// then their assignment within it, then the shift slot's times. Any
// missing link drops to the default window, flagged as fallback.
func (s *ScheduleServiceImpl) ResolveShift(ctx context.Context, req schedule.ResolveShiftRequest) (schedule.ShiftWindowResponse, error) {
	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return schedule.ShiftWindowResponse{}, schedule.ErrInvalidWeekStart
		}
		date = parsed
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	window := s.resolveWindow(ctx, req.StaffID, schedule.WorkGroup(req.Group), date)

	return schedule.ShiftWindowResponse{
		Date:      window.Date.Format("2006-01-02"),
		StaffID:   window.StaffID,
		ShiftType: string(window.ShiftType),
		Start:     window.Start,
		End:       window.End,
		Fallback:  window.Fallback,
	}, nil
}

func (s *ScheduleServiceImpl) resolveWindow(ctx context.Context, staffID string, group schedule.WorkGroup, date time.Time) schedule.ShiftWindow {
	fallback := schedule.ShiftWindow{
		Date:      date,
		StaffID:   staffID,
		ShiftType: schedule.ShiftTypeMorning,
		Start:     s.cfg.DefaultShiftStart,
		End:       s.cfg.DefaultShiftEnd,
		Fallback:  true,
	}

	week, err := s.ScheduleRepository.GetByWeekAndGroup(ctx, schedule.WeekStartOf(date), group)
	if err != nil {
		slog.Warn("Failed to load weekly schedule, using default shift window",
			"staff_id", staffID, "group", string(group), "error", err)
		return fallback
	}
	if week == nil {
		return fallback
	}

	assignment, ok := week.AssignmentFor(staffID)
	if !ok {
		return fallback
	}

	start, end := week.MorningStart, week.MorningEnd
	if assignment.ShiftType == schedule.ShiftTypeEvening {
		start, end = week.EveningStart, week.EveningEnd
	}
	// Stored clock times may be missing or malformed; either way the
	// resolver falls back rather than hand out a window nobody can parse.
	if !validClock(start) || !validClock(end) {
		if start != "" || end != "" {
			slog.Warn("Stored shift window is not a valid HH:MM clock time, using default",
				"staff_id", staffID, "group", string(group), "start", start, "end", end)
		}
		return fallback
	}

	return schedule.ShiftWindow{
		Date:      date,
		StaffID:   staffID,
		ShiftType: assignment.ShiftType,
		Start:     start,
		End:       end,
	}
}

// validClock reports whether s is an "HH:MM" clock time.
func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func toScheduleResponse(s schedule.WeeklySchedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:           s.ID,
		WeekStart:    s.WeekStart.Format("2006-01-02"),
		Group:        string(s.Group),
		MorningStart: s.MorningStart,
		MorningEnd:   s.MorningEnd,
		EveningStart: s.EveningStart,
		EveningEnd:   s.EveningEnd,
		Assignments:  s.Assignments,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}
