package worker

import "context"

// WorkerRepository defines data access methods for worker payroll profiles.
type WorkerRepository interface {
	// Create creates a new worker profile
	Create(ctx context.Context, w Worker) (Worker, error)

	// GetByID retrieves a worker by ID, excluding soft-deleted rows
	GetByID(ctx context.Context, id string) (Worker, error)

	// GetByStaffID retrieves a worker by the staff reference it mirrors
	GetByStaffID(ctx context.Context, staffID string) (Worker, error)

	// UpdateWithHistory persists all mutable fields of a worker and
	// appends the wage change snapshot in the same transaction
	UpdateWithHistory(ctx context.Context, w Worker, h WageHistory) error

	// List retrieves workers with filters and pagination
	List(ctx context.Context, filter ListWorkersFilter) ([]Worker, int64, error)

	// SoftDelete marks a worker deleted without removing ledger history
	SoftDelete(ctx context.Context, id string) error

	// ListWageHistory retrieves wage change snapshots, newest first
	ListWageHistory(ctx context.Context, workerID string) ([]WageHistory, error)
}
