package worker

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hillfarm/workforce-backend-go/internal/domain/worker"
)

type fakeWorkerRepo struct {
	workers   map[string]worker.Worker
	histories []worker.WageHistory
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[string]worker.Worker)}
}

func (f *fakeWorkerRepo) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	for _, existing := range f.workers {
		if existing.StaffID == w.StaffID {
			return worker.Worker{}, worker.ErrWorkerAlreadyExists
		}
	}
	if w.ID == "" {
		w.ID = "worker-" + w.StaffID
	}
	w.CreatedAt = time.Now()
	w.UpdatedAt = time.Now()
	f.workers[w.ID] = w
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok || w.IsDeleted {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) GetByStaffID(_ context.Context, staffID string) (worker.Worker, error) {
	for _, w := range f.workers {
		if w.StaffID == staffID && !w.IsDeleted {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *fakeWorkerRepo) UpdateWithHistory(_ context.Context, w worker.Worker, h worker.WageHistory) error {
	if _, ok := f.workers[w.ID]; !ok {
		return worker.ErrWorkerNotFound
	}
	f.workers[w.ID] = w
	f.histories = append(f.histories, h)
	return nil
}

func (f *fakeWorkerRepo) List(_ context.Context, filter worker.ListWorkersFilter) ([]worker.Worker, int64, error) {
	var out []worker.Worker
	for _, w := range f.workers {
		if w.IsDeleted {
			continue
		}
		if filter.Group != "" && w.Group != filter.Group {
			continue
		}
		out = append(out, w)
	}
	return out, int64(len(out)), nil
}

func (f *fakeWorkerRepo) SoftDelete(_ context.Context, id string) error {
	w, ok := f.workers[id]
	if !ok || w.IsDeleted {
		return worker.ErrWorkerNotFound
	}
	w.IsDeleted = true
	w.IsActive = false
	f.workers[id] = w
	return nil
}

func (f *fakeWorkerRepo) ListWageHistory(_ context.Context, workerID string) ([]worker.WageHistory, error) {
	var out []worker.WageHistory
	for i := len(f.histories) - 1; i >= 0; i-- {
		if f.histories[i].WorkerID == workerID {
			out = append(out, f.histories[i])
		}
	}
	return out, nil
}

func createRequest() worker.CreateWorkerRequest {
	return worker.CreateWorkerRequest{
		StaffID:   "staff-1",
		Name:      "Amina Odhiambo",
		Group:     "field",
		WageType:  "daily",
		DailyWage: decimal.NewFromInt(500),
	}
}

func TestCreateWorker(t *testing.T) {
	svc := NewWorkerService(newFakeWorkerRepo())

	resp, err := svc.CreateWorker(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, "staff-1", resp.StaffID)
	assert.True(t, resp.IsActive)
}

func TestCreateWorkerValidation(t *testing.T) {
	svc := NewWorkerService(newFakeWorkerRepo())

	req := createRequest()
	req.WageType = "hourly"
	_, err := svc.CreateWorker(context.Background(), req)
	assert.Error(t, err)

	req = createRequest()
	req.DailyWage = decimal.NewFromInt(-1)
	_, err = svc.CreateWorker(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateWorkerDuplicate(t *testing.T) {
	svc := NewWorkerService(newFakeWorkerRepo())

	_, err := svc.CreateWorker(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.CreateWorker(context.Background(), createRequest())
	assert.ErrorIs(t, err, worker.ErrWorkerAlreadyExists)
}

func TestUpdateWageAppendsHistory(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := NewWorkerService(repo)

	created, err := svc.CreateWorker(context.Background(), createRequest())
	require.NoError(t, err)

	newWage := decimal.NewFromInt(650)
	resp, err := svc.UpdateWage(context.Background(), worker.UpdateWageRequest{
		WorkerID:  created.ID,
		DailyWage: &newWage,
		Reason:    "seasonal adjustment",
		UpdatedBy: "admin-1",
	})
	require.NoError(t, err)
	assert.True(t, resp.DailyWage.Equal(newWage))

	require.Len(t, repo.histories, 1)
	h := repo.histories[0]
	assert.Equal(t, "wage_adjustment", h.ChangeType)
	assert.True(t, h.PreviousValues["daily_wage"].Equal(decimal.NewFromInt(500)))
	assert.True(t, h.NewValues["daily_wage"].Equal(newWage))
	assert.Equal(t, "admin-1", h.CreatedBy)
}

func TestUpdateWageTypeChange(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := NewWorkerService(repo)

	created, err := svc.CreateWorker(context.Background(), createRequest())
	require.NoError(t, err)

	monthly := "monthly"
	salary := decimal.NewFromInt(15000)
	resp, err := svc.UpdateWage(context.Background(), worker.UpdateWageRequest{
		WorkerID:      created.ID,
		WageType:      &monthly,
		MonthlySalary: &salary,
	})
	require.NoError(t, err)
	assert.Equal(t, "monthly", resp.WageType)

	require.Len(t, repo.histories, 1)
	assert.Equal(t, "wage_type_change", repo.histories[0].ChangeType)
}

func TestUpdateWageNoChanges(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := NewWorkerService(repo)

	created, err := svc.CreateWorker(context.Background(), createRequest())
	require.NoError(t, err)

	// Same value as stored: nothing to record.
	same := decimal.NewFromInt(500)
	_, err = svc.UpdateWage(context.Background(), worker.UpdateWageRequest{
		WorkerID:  created.ID,
		DailyWage: &same,
	})
	assert.ErrorIs(t, err, worker.ErrNoWageChanges)
	assert.Empty(t, repo.histories)
}

func TestDeactivateWorker(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := NewWorkerService(repo)

	created, err := svc.CreateWorker(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateWorker(context.Background(), created.ID))

	_, err = svc.GetWorker(context.Background(), created.ID)
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestGetWageHistoryUnknownWorker(t *testing.T) {
	svc := NewWorkerService(newFakeWorkerRepo())

	_, err := svc.GetWageHistory(context.Background(), "missing")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}
