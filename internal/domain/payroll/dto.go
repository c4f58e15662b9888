package payroll

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/hillfarm/workforce-backend-go/internal/pkg/validator"
)

type CalculateRequest struct {
	StaffID string `json:"-"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`

	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	PieceWorkUnits decimal.Decimal `json:"piece_work_units"`

	// Caller-supplied deductions; the provident fund share is computed
	// from the worker profile, not passed in.
	TaxDeduction    decimal.Decimal `json:"tax_deduction"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_hours",
			Message: "overtime_hours must not be negative",
		})
	}

	if r.PieceWorkUnits.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "piece_work_units",
			Message: "piece_work_units must not be negative",
		})
	}

	if r.TaxDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_deduction",
			Message: "tax_deduction must not be negative",
		})
	}

	if r.OtherDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "other_deductions",
			Message: "other_deductions must not be negative",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AppendEntryRequest struct {
	StaffID string `json:"-"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`

	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`

	CreatedBy string `json:"-"`
}

func (r *AppendEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !slices.Contains(EntryTypeValues, r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: received, advance, deduction, bonus",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEntriesFilter struct {
	StaffID string
	Year    int
	Month   int
	Type    string
	Page    int
	Limit   int
}

type EntryResponse struct {
	ID      string `json:"id"`
	StaffID string `json:"staff_id"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`

	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`

	CreatedBy string `json:"created_by,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ListEntriesResponse struct {
	Entries    []EntryResponse `json:"entries"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

type SummaryResponse struct {
	ID      string `json:"id"`
	StaffID string `json:"staff_id"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`

	WageType     string `json:"wage_type"`
	WageCategory string `json:"wage_category,omitempty"`

	WorkedDays     int             `json:"worked_days"`
	LateDays       int             `json:"late_days"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	PieceWorkUnits decimal.Decimal `json:"piece_work_units"`

	Rates RateSnapshot `json:"rates"`

	BaseSalary      decimal.Decimal `json:"base_salary"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	PieceWorkPay    decimal.Decimal `json:"piece_work_pay"`
	TotalBenefits   decimal.Decimal `json:"total_benefits"`
	TotalBonuses    decimal.Decimal `json:"total_bonuses"`
	GrossAmount     decimal.Decimal `json:"gross_amount"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetAmount       decimal.Decimal `json:"net_amount"`

	BonusAmount     decimal.Decimal `json:"bonus_amount"`
	DeductionAmount decimal.Decimal `json:"deduction_amount"`
	ReceivedAmount  decimal.Decimal `json:"received_amount"`
	AdvanceAmount   decimal.Decimal `json:"advance_amount"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`

	Status       string `json:"status"`
	CalculatedAt string `json:"calculated_at"`
}

// SalaryView joins the computed summary with its ledger rows for the
// unified per-period payroll screen.
type SalaryView struct {
	Summary SummaryResponse `json:"summary"`
	Entries []EntryResponse `json:"entries"`
}
