package worker

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/hillfarm/workforce-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	StaffID string `json:"staff_id"`
	Name    string `json:"name"`
	Group   string `json:"group"`

	WageType     string `json:"wage_type"`
	WageCategory string `json:"wage_category"`

	DailyWage     decimal.Decimal `json:"daily_wage"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
	PieceRate     decimal.Decimal `json:"piece_rate"`

	Benefits Benefits `json:"benefits"`

	AttendanceBonus   decimal.Decimal `json:"attendance_bonus"`
	ProductivityBonus decimal.Decimal `json:"productivity_bonus"`
	PerformanceBonus  decimal.Decimal `json:"performance_bonus"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !slices.Contains(WageTypeValues, r.WageType) {
		errs = append(errs, validator.ValidationError{
			Field:   "wage_type",
			Message: "wage_type must be one of: daily, monthly, contract, piece_rate",
		})
	}

	if r.WageCategory != "" && !slices.Contains(WageCategoryValues, r.WageCategory) {
		errs = append(errs, validator.ValidationError{
			Field:   "wage_category",
			Message: "invalid wage_category",
		})
	}

	if r.DailyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_wage",
			Message: "daily_wage must not be negative",
		})
	}

	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}

	if r.PieceRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "piece_rate",
			Message: "piece_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWageRequest struct {
	WorkerID string `json:"-"`

	WageType     *string `json:"wage_type,omitempty"`
	WageCategory *string `json:"wage_category,omitempty"`

	DailyWage     *decimal.Decimal `json:"daily_wage,omitempty"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary,omitempty"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate,omitempty"`
	OvertimeRate  *decimal.Decimal `json:"overtime_rate,omitempty"`
	PieceRate     *decimal.Decimal `json:"piece_rate,omitempty"`

	Benefits *Benefits `json:"benefits,omitempty"`

	AttendanceBonus   *decimal.Decimal `json:"attendance_bonus,omitempty"`
	ProductivityBonus *decimal.Decimal `json:"productivity_bonus,omitempty"`
	PerformanceBonus  *decimal.Decimal `json:"performance_bonus,omitempty"`

	EffectiveDate string `json:"effective_date"`
	Reason        string `json:"reason"`
	UpdatedBy     string `json:"-"`
}

func (r *UpdateWageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if r.WageType != nil && !slices.Contains(WageTypeValues, *r.WageType) {
		errs = append(errs, validator.ValidationError{
			Field:   "wage_type",
			Message: "wage_type must be one of: daily, monthly, contract, piece_rate",
		})
	}

	if r.WageCategory != nil && !slices.Contains(WageCategoryValues, *r.WageCategory) {
		errs = append(errs, validator.ValidationError{
			Field:   "wage_category",
			Message: "invalid wage_category",
		})
	}

	for field, v := range map[string]*decimal.Decimal{
		"daily_wage":     r.DailyWage,
		"monthly_salary": r.MonthlySalary,
		"hourly_rate":    r.HourlyRate,
		"piece_rate":     r.PieceRate,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if r.EffectiveDate != "" && !validator.IsValidDate(r.EffectiveDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_date",
			Message: "effective_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListWorkersFilter struct {
	Group    string
	WageType string
	IsActive *bool
	Page     int
	Limit    int
}

type WorkerResponse struct {
	ID      string `json:"id"`
	StaffID string `json:"staff_id"`
	Name    string `json:"name"`
	Group   string `json:"group"`

	WageType     string `json:"wage_type"`
	WageCategory string `json:"wage_category,omitempty"`

	DailyWage     decimal.Decimal `json:"daily_wage"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
	PieceRate     decimal.Decimal `json:"piece_rate"`

	Benefits Benefits `json:"benefits"`

	AttendanceBonus   decimal.Decimal `json:"attendance_bonus"`
	ProductivityBonus decimal.Decimal `json:"productivity_bonus"`
	PerformanceBonus  decimal.Decimal `json:"performance_bonus"`

	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ListWorkersResponse struct {
	Workers    []WorkerResponse `json:"workers"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

type WageHistoryResponse struct {
	ID             string                     `json:"id"`
	WorkerID       string                     `json:"worker_id"`
	ChangeType     string                     `json:"change_type"`
	PreviousValues map[string]decimal.Decimal `json:"previous_values"`
	NewValues      map[string]decimal.Decimal `json:"new_values"`
	EffectiveDate  string                     `json:"effective_date"`
	Reason         string                     `json:"reason,omitempty"`
	CreatedBy      string                     `json:"created_by,omitempty"`
	CreatedAt      string                     `json:"created_at"`
}
