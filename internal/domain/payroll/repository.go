package payroll

import "context"

// PayrollRepository defines data access methods for ledger entries and
// salary summaries.
type PayrollRepository interface {
	// CreateEntry appends a ledger row. Entries are never updated.
	CreateEntry(ctx context.Context, e Entry) (Entry, error)

	// ListEntriesByPeriod retrieves all rows for (staff_id, year, month),
	// newest first
	ListEntriesByPeriod(ctx context.Context, staffID string, year, month int) ([]Entry, error)

	// ListEntries retrieves rows with filters and pagination
	ListEntries(ctx context.Context, filter ListEntriesFilter) ([]Entry, int64, error)

	// GetSummary retrieves the summary for (staff_id, year, month),
	// nil when the period has never been calculated
	GetSummary(ctx context.Context, staffID string, year, month int) (*Summary, error)

	// UpsertSummary creates or replaces the summary for its period
	UpsertSummary(ctx context.Context, s Summary) (Summary, error)

	// ListSummaries retrieves all summaries for a period across staff
	ListSummaries(ctx context.Context, year, month int) ([]Summary, error)

	// ListSummariesByStaff retrieves up to limit summaries for one staff
	// member, most recent period first
	ListSummariesByStaff(ctx context.Context, staffID string, limit int) ([]Summary, error)
}
