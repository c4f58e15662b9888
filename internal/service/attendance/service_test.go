package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hillfarm/workforce-backend-go/internal/config"
	"github.com/hillfarm/workforce-backend-go/internal/domain/attendance"
	"github.com/hillfarm/workforce-backend-go/internal/domain/schedule"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if existing.StaffID == a.StaffID && existing.Date.Equal(a.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	f.records[a.ID] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	a, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (f *fakeAttendanceRepo) GetByStaffAndDate(_ context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	for _, a := range f.records {
		if a.StaffID == staffID && a.Date.Equal(date) {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, a attendance.Attendance) error {
	if _, ok := f.records[a.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[a.ID] = a
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		if filter.StaffID != "" && a.StaffID != filter.StaffID {
			continue
		}
		if filter.Status != "" && string(a.Status) != filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListByStaffAndPeriod(_ context.Context, staffID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		if a.StaffID == staffID && !a.Date.Before(from) && a.Date.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeScheduleService struct {
	window schedule.ShiftWindowResponse
}

func (f *fakeScheduleService) UpsertSchedule(context.Context, schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	return schedule.ScheduleResponse{}, nil
}

func (f *fakeScheduleService) GetSchedule(context.Context, time.Time, schedule.WorkGroup) (schedule.ScheduleResponse, error) {
	return schedule.ScheduleResponse{}, nil
}

func (f *fakeScheduleService) ResolveShift(_ context.Context, req schedule.ResolveShiftRequest) (schedule.ShiftWindowResponse, error) {
	w := f.window
	w.StaffID = req.StaffID
	w.Date = req.Date
	return w, nil
}

var _ schedule.ScheduleService = (*fakeScheduleService)(nil)

func newTestService(repo *fakeAttendanceRepo, now time.Time) *AttendanceServiceImpl {
	cfg := config.AttendanceConfig{
		MaxAccuracyMeters:   100,
		CheckInDelayMinutes: 5,
		LateGraceMinutes:    5,
		DefaultShiftStart:   "09:00",
		DefaultShiftEnd:     "14:00",
	}
	sched := &fakeScheduleService{window: schedule.ShiftWindowResponse{
		ShiftType: "Morning",
		Start:     "09:00",
		End:       "14:00",
		Fallback:  true,
	}}

	svc := NewAttendanceService(repo, sched, cfg).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func markRequest(eventType attendance.EventType) attendance.MarkRequest {
	return attendance.MarkRequest{
		StaffID: "staff-1",
		Group:   "field",
		Type:    eventType,
		Location: attendance.Location{
			Latitude:  -1.2921,
			Longitude: 36.8219,
			Accuracy:  10,
		},
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 25, hour, minute, 0, 0, time.UTC)
}

func TestMarkRejectsBeforeGate(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), at(9, 4))

	_, err := svc.Mark(context.Background(), markRequest(attendance.EventCheckIn))
	assert.ErrorIs(t, err, attendance.ErrTooEarlyToCheckIn)

	var tooEarly *attendance.TooEarlyError
	require.ErrorAs(t, err, &tooEarly)
	assert.Equal(t, "09:05", tooEarly.AllowedFrom.Format("15:04"))
}

func TestMarkAcceptsAtGateNotLate(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), at(9, 5))

	resp, err := svc.Mark(context.Background(), markRequest(attendance.EventCheckIn))
	require.NoError(t, err)
	assert.False(t, resp.IsLate)
	require.NotNil(t, resp.CheckInAt)
	assert.Nil(t, resp.CheckOutAt)
}

func TestMarkAfterGraceIsLate(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), at(9, 6))

	resp, err := svc.Mark(context.Background(), markRequest(attendance.EventCheckIn))
	require.NoError(t, err)
	assert.True(t, resp.IsLate)
}

func TestMarkRequiresEventType(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), at(9, 10))

	req := markRequest("")
	_, err := svc.Mark(context.Background(), req)
	require.Error(t, err)

	req.Type = "break"
	_, err = svc.Mark(context.Background(), req)
	require.Error(t, err)
}

func TestMarkDuplicateCheckInRejected(t *testing.T) {
	repo := newFakeAttendanceRepo()

	svc := newTestService(repo, at(9, 5))
	_, err := svc.Mark(context.Background(), markRequest(attendance.EventCheckIn))
	require.NoError(t, err)

	svc = newTestService(repo, at(9, 6))
	_, err = svc.Mark(context.Background(), markRequest(attendance.EventCheckIn))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestMarkCheckOutWithoutCheckIn(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), at(14, 0))

	_, err := svc.Mark(context.Background(), markRequest(attendance.EventCheckOut))
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestMarkCheckOutClosesDay(t *testing.T) {
	repo := newFakeAttendanceRepo()

	svc := newTestService(repo, at(9, 10))
	first, err := svc.Mark(context.Background(), markRequest(attendance.EventCheckIn))
	require.NoError(t, err)
	require.Nil(t, first.CheckOutAt)

	svc = newTestService(repo, at(14, 0))
	second, err := svc.Mark(context.Background(), markRequest(attendance.EventCheckOut))
	require.NoError(t, err)
	require.NotNil(t, second.CheckOutAt)
	assert.Equal(t, first.ID, second.ID)
	assert.InDelta(t, 4.83, second.WorkedHours, 0.01)
}

func TestMarkSecondCheckOutRejected(t *testing.T) {
	repo := newFakeAttendanceRepo()

	svc := newTestService(repo, at(9, 10))
	_, err := svc.Mark(context.Background(), markRequest(attendance.EventCheckIn))
	require.NoError(t, err)

	svc = newTestService(repo, at(14, 0))
	_, err = svc.Mark(context.Background(), markRequest(attendance.EventCheckOut))
	require.NoError(t, err)

	svc = newTestService(repo, at(15, 0))
	_, err = svc.Mark(context.Background(), markRequest(attendance.EventCheckOut))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestMarkRejectsLowAccuracy(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), at(9, 10))

	req := markRequest(attendance.EventCheckIn)
	req.Location.Accuracy = 250

	_, err := svc.Mark(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrLowLocationAccuracy)
}

func TestMarkSnapshotsShiftWindow(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), at(9, 10))

	resp, err := svc.Mark(context.Background(), markRequest(attendance.EventCheckIn))
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.ShiftStart)
	assert.Equal(t, "14:00", resp.ShiftEnd)
	assert.True(t, resp.Fallback)
	assert.Equal(t, "pending", resp.Status)
}

func TestVerifyApproveAndReject(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, at(9, 10))

	created, err := svc.Mark(context.Background(), markRequest(attendance.EventCheckIn))
	require.NoError(t, err)

	approved, err := svc.Verify(context.Background(), attendance.VerifyRequest{
		AttendanceID: created.ID,
		Approve:      true,
		VerifiedBy:   "manager-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	// A processed record cannot be verified again.
	_, err = svc.Verify(context.Background(), attendance.VerifyRequest{
		AttendanceID:    created.ID,
		Approve:         false,
		RejectionReason: "photo unclear",
		VerifiedBy:      "manager-1",
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyVerified)
}
