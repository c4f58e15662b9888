package worker

import "context"

// WorkerService defines business logic for worker payroll profiles.
type WorkerService interface {
	// CreateWorker registers a payroll profile for a staff member
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)

	// GetWorker retrieves a single worker by ID
	GetWorker(ctx context.Context, id string) (WorkerResponse, error)

	// ListWorkers retrieves workers with filters and pagination
	ListWorkers(ctx context.Context, filter ListWorkersFilter) (ListWorkersResponse, error)

	// UpdateWage applies a wage change and appends a WageHistory snapshot
	UpdateWage(ctx context.Context, req UpdateWageRequest) (WorkerResponse, error)

	// DeactivateWorker soft deletes a worker, keeping its ledger intact
	DeactivateWorker(ctx context.Context, id string) error

	// GetWageHistory retrieves wage change snapshots, newest first
	GetWageHistory(ctx context.Context, workerID string) ([]WageHistoryResponse, error)
}
