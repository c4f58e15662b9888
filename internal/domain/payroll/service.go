package payroll

import "context"

// PayrollService defines business logic for salary calculation and the
// payment ledger.
type PayrollService interface {
	// Calculate computes the salary summary for a staff member's period
	// from attendance and the worker's wage profile, preserving ledger
	// totals already recorded against the period.
	Calculate(ctx context.Context, req CalculateRequest) (SummaryResponse, error)

	// AppendEntry appends a ledger row and recomputes the period's
	// derived totals.
	AppendEntry(ctx context.Context, req AppendEntryRequest) (SummaryResponse, error)

	// ListEntries retrieves ledger rows for a staff member's period,
	// newest first.
	ListEntries(ctx context.Context, filter ListEntriesFilter) (ListEntriesResponse, error)

	// GetSalaryView retrieves the summary and its ledger rows together.
	GetSalaryView(ctx context.Context, staffID string, year, month int) (SalaryView, error)

	// GetSummary retrieves the computed summary for a period.
	GetSummary(ctx context.Context, staffID string, year, month int) (SummaryResponse, error)

	// GetSalaryHistory retrieves recent period summaries for a staff
	// member, most recent first.
	GetSalaryHistory(ctx context.Context, staffID string, months int) ([]SummaryResponse, error)
}
