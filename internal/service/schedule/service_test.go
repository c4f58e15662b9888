package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hillfarm/workforce-backend-go/internal/config"
	"github.com/hillfarm/workforce-backend-go/internal/domain/schedule"
)

type fakeScheduleRepo struct {
	schedules map[string]schedule.WeeklySchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]schedule.WeeklySchedule)}
}

func scheduleKey(weekStart time.Time, group schedule.WorkGroup) string {
	return weekStart.Format("2006-01-02") + ":" + string(group)
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, s schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	if s.ID == "" {
		s.ID = "sched-" + scheduleKey(s.WeekStart, s.Group)
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	f.schedules[scheduleKey(s.WeekStart, s.Group)] = s
	return s, nil
}

func (f *fakeScheduleRepo) GetByWeekAndGroup(_ context.Context, weekStart time.Time, group schedule.WorkGroup) (*schedule.WeeklySchedule, error) {
	s, ok := f.schedules[scheduleKey(weekStart, group)]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeScheduleRepo) ListByWeek(_ context.Context, weekStart time.Time) ([]schedule.WeeklySchedule, error) {
	var out []schedule.WeeklySchedule
	for _, g := range []schedule.WorkGroup{schedule.WorkGroupField, schedule.WorkGroupLab} {
		if s, ok := f.schedules[scheduleKey(weekStart, g)]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func testAttendanceConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		MaxAccuracyMeters:   100,
		CheckInDelayMinutes: 5,
		LateGraceMinutes:    5,
		DefaultShiftStart:   "09:00",
		DefaultShiftEnd:     "14:00",
	}
}

func TestWeekStartOf(t *testing.T) {
	// 2026-08-26 is a Wednesday; its week starts Sunday 2026-08-23.
	wed := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), schedule.WeekStartOf(wed))

	// A Sunday is its own week start.
	sun := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), schedule.WeekStartOf(sun))

	// Saturday belongs to the week that started six days earlier.
	sat := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), schedule.WeekStartOf(sat))
}

func TestUpsertScheduleNormalizesWeekStart(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo, testAttendanceConfig())

	resp, err := svc.UpsertSchedule(context.Background(), schedule.UpsertScheduleRequest{
		WeekStart:    "2026-08-26", // Wednesday
		Group:        "field",
		MorningStart: "06:00",
		MorningEnd:   "12:00",
		EveningStart: "14:00",
		EveningEnd:   "20:00",
		Assignments: []schedule.ShiftAssignment{
			{StaffID: "staff-1", ShiftType: schedule.ShiftTypeMorning},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-23", resp.WeekStart)
}

func TestUpsertScheduleValidation(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo, testAttendanceConfig())

	_, err := svc.UpsertSchedule(context.Background(), schedule.UpsertScheduleRequest{
		WeekStart:    "2026-08-23",
		Group:        "warehouse",
		MorningStart: "6am",
		MorningEnd:   "12:00",
		EveningStart: "14:00",
		EveningEnd:   "20:00",
		Assignments: []schedule.ShiftAssignment{
			{StaffID: "staff-1", ShiftType: schedule.ShiftTypeMorning},
			{StaffID: "staff-1", ShiftType: schedule.ShiftTypeEvening},
		},
	})
	require.Error(t, err)
}

func TestResolveShiftAssignedMorning(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo, testAttendanceConfig())

	_, err := svc.UpsertSchedule(context.Background(), schedule.UpsertScheduleRequest{
		WeekStart:    "2026-08-23",
		Group:        "lab",
		MorningStart: "07:00",
		MorningEnd:   "13:00",
		EveningStart: "13:00",
		EveningEnd:   "19:00",
		Assignments: []schedule.ShiftAssignment{
			{StaffID: "staff-1", ShiftType: schedule.ShiftTypeMorning},
			{StaffID: "staff-2", ShiftType: schedule.ShiftTypeEvening},
		},
	})
	require.NoError(t, err)

	resp, err := svc.ResolveShift(context.Background(), schedule.ResolveShiftRequest{
		StaffID: "staff-1",
		Group:   "lab",
		Date:    "2026-08-25",
	})
	require.NoError(t, err)
	assert.Equal(t, "Morning", resp.ShiftType)
	assert.Equal(t, "07:00", resp.Start)
	assert.Equal(t, "13:00", resp.End)
	assert.False(t, resp.Fallback)

	resp, err = svc.ResolveShift(context.Background(), schedule.ResolveShiftRequest{
		StaffID: "staff-2",
		Group:   "lab",
		Date:    "2026-08-25",
	})
	require.NoError(t, err)
	assert.Equal(t, "Evening", resp.ShiftType)
	assert.Equal(t, "13:00", resp.Start)
	assert.Equal(t, "19:00", resp.End)
}

func TestResolveShiftFallsBackWithoutSchedule(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo, testAttendanceConfig())

	resp, err := svc.ResolveShift(context.Background(), schedule.ResolveShiftRequest{
		StaffID: "staff-1",
		Group:   "lab",
		Date:    "2026-08-25",
	})
	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, "09:00", resp.Start)
	assert.Equal(t, "14:00", resp.End)
}

func TestResolveShiftFallsBackWithoutAssignment(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo, testAttendanceConfig())

	_, err := svc.UpsertSchedule(context.Background(), schedule.UpsertScheduleRequest{
		WeekStart:    "2026-08-23",
		Group:        "lab",
		MorningStart: "07:00",
		MorningEnd:   "13:00",
		EveningStart: "13:00",
		EveningEnd:   "19:00",
		Assignments: []schedule.ShiftAssignment{
			{StaffID: "staff-1", ShiftType: schedule.ShiftTypeMorning},
		},
	})
	require.NoError(t, err)

	resp, err := svc.ResolveShift(context.Background(), schedule.ResolveShiftRequest{
		StaffID: "staff-unassigned",
		Group:   "lab",
		Date:    "2026-08-25",
	})
	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, "09:00", resp.Start)
	assert.Equal(t, "14:00", resp.End)
}

func TestResolveShiftFallsBackOnMalformedStoredWindow(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo, testAttendanceConfig())

	// Seed the store directly so the record skips upsert validation, the
	// way legacy rows with bad clock strings would.
	_, err := repo.Upsert(context.Background(), schedule.WeeklySchedule{
		WeekStart:    time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		Group:        schedule.WorkGroupLab,
		MorningStart: "9am",
		MorningEnd:   "13:00",
		Assignments: []schedule.ShiftAssignment{
			{StaffID: "staff-1", ShiftType: schedule.ShiftTypeMorning},
		},
	})
	require.NoError(t, err)

	resp, err := svc.ResolveShift(context.Background(), schedule.ResolveShiftRequest{
		StaffID: "staff-1",
		Group:   "lab",
		Date:    "2026-08-25",
	})
	require.NoError(t, err)
	assert.True(t, resp.Fallback)
	assert.Equal(t, "09:00", resp.Start)
	assert.Equal(t, "14:00", resp.End)
}

func TestGetScheduleNotFound(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewScheduleService(repo, testAttendanceConfig())

	_, err := svc.GetSchedule(context.Background(), time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), schedule.WorkGroupField)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}
