package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hillfarm/workforce-backend-go/internal/domain/attendance"
	"github.com/hillfarm/workforce-backend-go/internal/domain/payroll"
	"github.com/hillfarm/workforce-backend-go/internal/domain/worker"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/notify"
	"github.com/hillfarm/workforce-backend-go/internal/pkg/periodlock"
)

// providentFundRate is the deduction applied to the base salary when the
// worker's provident fund benefit is enabled.
var providentFundRate = decimal.NewFromFloat(0.12)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	worker.WorkerRepository
	attendance.AttendanceRepository

	notifier notify.Notifier
	logger   *slog.Logger
	locks    *periodlock.KeyMutex

	// now is replaceable in tests
	now func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	notifier notify.Notifier,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:    payrollRepo,
		WorkerRepository:     workerRepo,
		AttendanceRepository: attendanceRepo,
		notifier:             notifier,
		logger:               logger,
		locks:                periodlock.New(),
		now:                  time.Now,
	}
}

func periodKey(staffID string, year, month int) string {
	return fmt.Sprintf("%s:%d:%d", staffID, year, month)
}

// Calculate implements payroll.PayrollService. Recalculating a period is
// idempotent for the computed fields; ledger totals already recorded
// against the period survive untouched because they are re-derived from
// the entry rows on every run.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SummaryResponse{}, err
	}

	w, err := s.WorkerRepository.GetByStaffID(ctx, req.StaffID)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	key := periodKey(req.StaffID, req.Year, req.Month)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	records, err := s.AttendanceRepository.ListByStaffAndPeriod(ctx, req.StaffID, from, to)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to load attendance for period: %w", err)
	}

	input := PeriodInput{
		Year:           req.Year,
		Month:          req.Month,
		OvertimeHours:  req.OvertimeHours,
		PieceWorkUnits: req.PieceWorkUnits,
	}
	input.TotalHours = decimal.Zero
	lateDays := 0
	for _, rec := range records {
		if rec.CheckInAt == nil {
			continue
		}
		input.WorkedDays++
		if rec.IsLate {
			lateDays++
		}
		input.TotalHours = input.TotalHours.Add(decimal.NewFromFloat(rec.WorkedHours()).Round(2))
	}

	strat := SelectStrategy(w.WageType)
	base := strat.BaseSalary(w, input)

	pieceWorkPay := decimal.Zero
	if w.WageType == worker.WageTypePieceRate {
		// The strategy output for piece workers is entirely per-unit pay.
		pieceWorkPay = base
		base = decimal.Zero
	}

	overtimePay := strat.OvertimePay(w, input)
	totalBenefits := w.Benefits.Total()
	totalBonuses := w.AttendanceBonus.Add(w.ProductivityBonus).Add(w.PerformanceBonus)

	gross := base.Add(overtimePay).Add(pieceWorkPay).Add(totalBenefits).Add(totalBonuses)

	totalDeductions := req.TaxDeduction.Add(req.OtherDeductions)
	if w.Benefits.ProvidentFund {
		totalDeductions = totalDeductions.Add(base.Mul(providentFundRate).Round(2))
	}
	net := gross.Sub(totalDeductions)

	entries, err := s.PayrollRepository.ListEntriesByPeriod(ctx, req.StaffID, req.Year, req.Month)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to load ledger entries: %w", err)
	}
	totals := payroll.FoldEntries(entries)

	summary := payroll.Summary{
		StaffID:      req.StaffID,
		Year:         req.Year,
		Month:        req.Month,
		WageType:     string(w.WageType),
		WageCategory: string(w.WageCategory),

		WorkedDays:     input.WorkedDays,
		LateDays:       lateDays,
		TotalHours:     input.TotalHours,
		OvertimeHours:  req.OvertimeHours,
		PieceWorkUnits: req.PieceWorkUnits,

		Rates: payroll.RateSnapshot{
			DailyWage:     w.DailyWage,
			MonthlySalary: w.MonthlySalary,
			HourlyRate:    w.HourlyRate,
			OvertimeRate:  w.OvertimeRate,
			PieceRate:     w.PieceRate,
		},

		BaseSalary:      base,
		OvertimePay:     overtimePay,
		PieceWorkPay:    pieceWorkPay,
		TotalBenefits:   totalBenefits,
		TotalBonuses:    totalBonuses,
		GrossAmount:     gross,
		TotalDeductions: totalDeductions,
		NetAmount:       net,

		BonusAmount:     totals.Bonus,
		DeductionAmount: totals.Deduction,
		ReceivedAmount:  totals.Received,
		AdvanceAmount:   totals.Advance,
		PendingAmount:   totals.Pending(gross),

		Status:       payroll.SummaryStatusCalculated,
		CalculatedAt: s.now(),
	}

	saved, err := s.PayrollRepository.UpsertSummary(ctx, summary)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	notify.DispatchSalaryCalculated(s.logger, s.notifier, notify.SalaryCalculatedEvent{
		StaffID:       saved.StaffID,
		Year:          saved.Year,
		Month:         saved.Month,
		GrossAmount:   saved.GrossAmount,
		PendingAmount: saved.PendingAmount,
	})

	return toSummaryResponse(saved), nil
}

// AppendEntry implements payroll.PayrollService. The entry row is the
// source of truth; the summary's ledger totals are re-derived by folding
// all rows for the period.
func (s *PayrollServiceImpl) AppendEntry(ctx context.Context, req payroll.AppendEntryRequest) (payroll.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SummaryResponse{}, err
	}

	if _, err := s.WorkerRepository.GetByStaffID(ctx, req.StaffID); err != nil {
		return payroll.SummaryResponse{}, err
	}

	key := periodKey(req.StaffID, req.Year, req.Month)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	_, err := s.PayrollRepository.CreateEntry(ctx, payroll.Entry{
		StaffID:   req.StaffID,
		Year:      req.Year,
		Month:     req.Month,
		Type:      payroll.EntryType(req.Type),
		Amount:    req.Amount,
		Note:      req.Note,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	summary, err := s.refreshSummary(ctx, req.StaffID, req.Year, req.Month)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	notify.DispatchPaymentRecorded(s.logger, s.notifier, notify.PaymentRecordedEvent{
		StaffID:       summary.StaffID,
		Year:          summary.Year,
		Month:         summary.Month,
		Type:          req.Type,
		Amount:        req.Amount,
		PendingAmount: summary.PendingAmount,
	})

	return toSummaryResponse(summary), nil
}

// refreshSummary re-folds the period's ledger rows into the stored
// summary. A period that has never been calculated gets a draft summary
// carrying only ledger totals.
func (s *PayrollServiceImpl) refreshSummary(ctx context.Context, staffID string, year, month int) (payroll.Summary, error) {
	existing, err := s.PayrollRepository.GetSummary(ctx, staffID, year, month)
	if err != nil {
		return payroll.Summary{}, err
	}

	summary := payroll.Summary{
		StaffID: staffID,
		Year:    year,
		Month:   month,
		Status:  payroll.SummaryStatusDraft,
	}
	if existing != nil {
		summary = *existing
	}

	entries, err := s.PayrollRepository.ListEntriesByPeriod(ctx, staffID, year, month)
	if err != nil {
		return payroll.Summary{}, fmt.Errorf("failed to load ledger entries: %w", err)
	}
	totals := payroll.FoldEntries(entries)

	summary.BonusAmount = totals.Bonus
	summary.DeductionAmount = totals.Deduction
	summary.ReceivedAmount = totals.Received
	summary.AdvanceAmount = totals.Advance
	summary.PendingAmount = totals.Pending(summary.GrossAmount)

	return s.PayrollRepository.UpsertSummary(ctx, summary)
}

// ListEntries implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListEntries(ctx context.Context, filter payroll.ListEntriesFilter) (payroll.ListEntriesResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	entries, total, err := s.PayrollRepository.ListEntries(ctx, filter)
	if err != nil {
		return payroll.ListEntriesResponse{}, fmt.Errorf("failed to list payroll entries: %w", err)
	}

	resp := payroll.ListEntriesResponse{
		Entries:    make([]payroll.EntryResponse, 0, len(entries)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}

	return resp, nil
}

// GetSalaryView implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalaryView(ctx context.Context, staffID string, year, month int) (payroll.SalaryView, error) {
	summary, err := s.PayrollRepository.GetSummary(ctx, staffID, year, month)
	if err != nil {
		return payroll.SalaryView{}, err
	}
	if summary == nil {
		return payroll.SalaryView{}, payroll.ErrSummaryNotFound
	}

	entries, err := s.PayrollRepository.ListEntriesByPeriod(ctx, staffID, year, month)
	if err != nil {
		return payroll.SalaryView{}, fmt.Errorf("failed to load ledger entries: %w", err)
	}

	view := payroll.SalaryView{
		Summary: toSummaryResponse(*summary),
		Entries: make([]payroll.EntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		view.Entries = append(view.Entries, toEntryResponse(e))
	}

	return view, nil
}

// GetSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, staffID string, year, month int) (payroll.SummaryResponse, error) {
	summary, err := s.PayrollRepository.GetSummary(ctx, staffID, year, month)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}
	if summary == nil {
		return payroll.SummaryResponse{}, payroll.ErrSummaryNotFound
	}
	return toSummaryResponse(*summary), nil
}

// GetSalaryHistory implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalaryHistory(ctx context.Context, staffID string, months int) ([]payroll.SummaryResponse, error) {
	summaries, err := s.PayrollRepository.ListSummariesByStaff(ctx, staffID, months)
	if err != nil {
		return nil, err
	}

	history := make([]payroll.SummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		history = append(history, toSummaryResponse(sum))
	}

	return history, nil
}

func toEntryResponse(e payroll.Entry) payroll.EntryResponse {
	return payroll.EntryResponse{
		ID:        e.ID,
		StaffID:   e.StaffID,
		Year:      e.Year,
		Month:     e.Month,
		Type:      string(e.Type),
		Amount:    e.Amount,
		Note:      e.Note,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func toSummaryResponse(s payroll.Summary) payroll.SummaryResponse {
	return payroll.SummaryResponse{
		ID:      s.ID,
		StaffID: s.StaffID,
		Year:    s.Year,
		Month:   s.Month,

		WageType:     s.WageType,
		WageCategory: s.WageCategory,

		WorkedDays:     s.WorkedDays,
		LateDays:       s.LateDays,
		TotalHours:     s.TotalHours,
		OvertimeHours:  s.OvertimeHours,
		PieceWorkUnits: s.PieceWorkUnits,

		Rates: s.Rates,

		BaseSalary:      s.BaseSalary,
		OvertimePay:     s.OvertimePay,
		PieceWorkPay:    s.PieceWorkPay,
		TotalBenefits:   s.TotalBenefits,
		TotalBonuses:    s.TotalBonuses,
		GrossAmount:     s.GrossAmount,
		TotalDeductions: s.TotalDeductions,
		NetAmount:       s.NetAmount,

		BonusAmount:     s.BonusAmount,
		DeductionAmount: s.DeductionAmount,
		ReceivedAmount:  s.ReceivedAmount,
		AdvanceAmount:   s.AdvanceAmount,
		PendingAmount:   s.PendingAmount,

		Status:       string(s.Status),
		CalculatedAt: s.CalculatedAt.Format(time.RFC3339),
	}
}
