package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hillfarm/workforce-backend-go/internal/domain/payroll"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// CreateEntry implements payroll.PayrollRepository.
func (r *payrollRepository) CreateEntry(ctx context.Context, e payroll.Entry) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payroll_entries (
			id, staff_id, year, month, entry_type, amount, note, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.StaffID, e.Year, e.Month, e.Type, e.Amount, e.Note, e.CreatedBy,
	).Scan(&e.CreatedAt)

	if err != nil {
		return payroll.Entry{}, fmt.Errorf("failed to create payroll entry: %w", err)
	}

	return e, nil
}

// ListEntriesByPeriod implements payroll.PayrollRepository.
func (r *payrollRepository) ListEntriesByPeriod(ctx context.Context, staffID string, year, month int) ([]payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, year, month, entry_type, amount, note, created_by, created_at
		FROM payroll_entries
		WHERE staff_id = $1 AND year = $2 AND month = $3
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, staffID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListEntries implements payroll.PayrollRepository.
func (r *payrollRepository) ListEntries(ctx context.Context, filter payroll.ListEntriesFilter) ([]payroll.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.StaffID != "" {
		baseWhere += fmt.Sprintf(" AND staff_id = $%d", argIdx)
		args = append(args, filter.StaffID)
		argIdx++
	}
	if filter.Year != 0 {
		baseWhere += fmt.Sprintf(" AND year = $%d", argIdx)
		args = append(args, filter.Year)
		argIdx++
	}
	if filter.Month != 0 {
		baseWhere += fmt.Sprintf(" AND month = $%d", argIdx)
		args = append(args, filter.Month)
		argIdx++
	}
	if filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND entry_type = $%d", argIdx)
		args = append(args, filter.Type)
		argIdx++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM payroll_entries " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll entries: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT id, staff_id, year, month, entry_type, amount, note, created_by, created_at
		FROM payroll_entries
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	entries, err := collectEntries(rows)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func collectEntries(rows pgx.Rows) ([]payroll.Entry, error) {
	var entries []payroll.Entry
	for rows.Next() {
		var e payroll.Entry
		err := rows.Scan(
			&e.ID, &e.StaffID, &e.Year, &e.Month,
			&e.Type, &e.Amount, &e.Note, &e.CreatedBy, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll entries: %w", err)
	}
	return entries, nil
}

const summaryColumns = `
	id, staff_id, year, month, wage_type, wage_category,
	worked_days, late_days, total_hours, overtime_hours, piece_work_units,
	rates, base_salary, overtime_pay, piece_work_pay,
	total_benefits, total_bonuses, gross_amount, total_deductions, net_amount,
	bonus_amount, deduction_amount, received_amount, advance_amount, pending_amount,
	status, calculated_at, created_at, updated_at
`

func scanSummary(row pgx.Row) (payroll.Summary, error) {
	var s payroll.Summary
	var rates []byte

	err := row.Scan(
		&s.ID, &s.StaffID, &s.Year, &s.Month, &s.WageType, &s.WageCategory,
		&s.WorkedDays, &s.LateDays, &s.TotalHours, &s.OvertimeHours, &s.PieceWorkUnits,
		&rates, &s.BaseSalary, &s.OvertimePay, &s.PieceWorkPay,
		&s.TotalBenefits, &s.TotalBonuses, &s.GrossAmount, &s.TotalDeductions, &s.NetAmount,
		&s.BonusAmount, &s.DeductionAmount, &s.ReceivedAmount, &s.AdvanceAmount, &s.PendingAmount,
		&s.Status, &s.CalculatedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.Summary{}, err
	}

	if len(rates) > 0 {
		if err := json.Unmarshal(rates, &s.Rates); err != nil {
			return payroll.Summary{}, fmt.Errorf("failed to decode rate snapshot: %w", err)
		}
	}

	return s, nil
}

// GetSummary implements payroll.PayrollRepository.
func (r *payrollRepository) GetSummary(ctx context.Context, staffID string, year, month int) (*payroll.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM salary_summaries
		WHERE staff_id = $1 AND year = $2 AND month = $3
	`

	s, err := scanSummary(q.QueryRow(ctx, query, staffID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get salary summary: %w", err)
	}

	return &s, nil
}

// UpsertSummary implements payroll.PayrollRepository.
func (r *payrollRepository) UpsertSummary(ctx context.Context, s payroll.Summary) (payroll.Summary, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	rates, err := json.Marshal(s.Rates)
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to encode rate snapshot: %w", err)
	}

	query := `
		INSERT INTO salary_summaries (
			id, staff_id, year, month, wage_type, wage_category,
			worked_days, late_days, total_hours, overtime_hours, piece_work_units,
			rates, base_salary, overtime_pay, piece_work_pay,
			total_benefits, total_bonuses, gross_amount, total_deductions, net_amount,
			bonus_amount, deduction_amount, received_amount, advance_amount, pending_amount,
			status, calculated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		)
		ON CONFLICT (staff_id, year, month) DO UPDATE SET
			wage_type = EXCLUDED.wage_type,
			wage_category = EXCLUDED.wage_category,
			worked_days = EXCLUDED.worked_days,
			late_days = EXCLUDED.late_days,
			total_hours = EXCLUDED.total_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			piece_work_units = EXCLUDED.piece_work_units,
			rates = EXCLUDED.rates,
			base_salary = EXCLUDED.base_salary,
			overtime_pay = EXCLUDED.overtime_pay,
			piece_work_pay = EXCLUDED.piece_work_pay,
			total_benefits = EXCLUDED.total_benefits,
			total_bonuses = EXCLUDED.total_bonuses,
			gross_amount = EXCLUDED.gross_amount,
			total_deductions = EXCLUDED.total_deductions,
			net_amount = EXCLUDED.net_amount,
			bonus_amount = EXCLUDED.bonus_amount,
			deduction_amount = EXCLUDED.deduction_amount,
			received_amount = EXCLUDED.received_amount,
			advance_amount = EXCLUDED.advance_amount,
			pending_amount = EXCLUDED.pending_amount,
			status = EXCLUDED.status,
			calculated_at = EXCLUDED.calculated_at,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		s.ID, s.StaffID, s.Year, s.Month, s.WageType, s.WageCategory,
		s.WorkedDays, s.LateDays, s.TotalHours, s.OvertimeHours, s.PieceWorkUnits,
		rates, s.BaseSalary, s.OvertimePay, s.PieceWorkPay,
		s.TotalBenefits, s.TotalBonuses, s.GrossAmount, s.TotalDeductions, s.NetAmount,
		s.BonusAmount, s.DeductionAmount, s.ReceivedAmount, s.AdvanceAmount, s.PendingAmount,
		s.Status, s.CalculatedAt,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to upsert salary summary: %w", err)
	}

	return s, nil
}

// ListSummaries implements payroll.PayrollRepository.
func (r *payrollRepository) ListSummaries(ctx context.Context, year, month int) ([]payroll.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM salary_summaries
		WHERE year = $1 AND month = $2
		ORDER BY staff_id ASC
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary summaries: %w", err)
	}
	defer rows.Close()

	return collectSummaries(rows)
}

// ListSummariesByStaff implements payroll.PayrollRepository.
func (r *payrollRepository) ListSummariesByStaff(ctx context.Context, staffID string, limit int) ([]payroll.Summary, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 12
	}

	query := `
		SELECT ` + summaryColumns + `
		FROM salary_summaries
		WHERE staff_id = $1
		ORDER BY year DESC, month DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, staffID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary summaries for staff: %w", err)
	}
	defer rows.Close()

	return collectSummaries(rows)
}

func collectSummaries(rows pgx.Rows) ([]payroll.Summary, error) {
	var summaries []payroll.Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salary summaries: %w", err)
	}
	return summaries, nil
}
