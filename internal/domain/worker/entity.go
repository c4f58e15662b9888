package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type WageType string

const (
	WageTypeDaily     WageType = "daily"
	WageTypeMonthly   WageType = "monthly"
	WageTypeContract  WageType = "contract"
	WageTypePieceRate WageType = "piece_rate"
)

var WageTypeValues = []string{
	string(WageTypeDaily),
	string(WageTypeMonthly),
	string(WageTypeContract),
	string(WageTypePieceRate),
}

type WageCategory string

const (
	WageCategoryUnskilled   WageCategory = "unskilled"
	WageCategorySemiSkilled WageCategory = "semi_skilled"
	WageCategorySkilled     WageCategory = "skilled"
	WageCategorySupervisor  WageCategory = "supervisor"
	WageCategoryManager     WageCategory = "manager"
)

var WageCategoryValues = []string{
	string(WageCategoryUnskilled),
	string(WageCategorySemiSkilled),
	string(WageCategorySkilled),
	string(WageCategorySupervisor),
	string(WageCategoryManager),
}

// Benefits are the fixed monthly allowances paid on top of the base wage.
type Benefits struct {
	ProvidentFund      bool            `json:"provident_fund"`
	HealthInsurance    bool            `json:"health_insurance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	FoodAllowance      decimal.Decimal `json:"food_allowance"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
}

// Total sums the monetary allowances. Boolean benefit flags contribute
// nothing here; provident fund is applied as a deduction rate at
// calculation time.
func (b Benefits) Total() decimal.Decimal {
	return b.TransportAllowance.
		Add(b.FoodAllowance).
		Add(b.HousingAllowance).
		Add(b.OtherAllowances)
}

// Worker is the payroll profile of a staff member. Identity (login, email,
// role storage) is owned by the staff-management system; payroll references
// it through StaffID only.
type Worker struct {
	ID      string
	StaffID string
	Name    string
	Group   string

	WageType     WageType
	WageCategory WageCategory

	DailyWage     decimal.Decimal
	MonthlySalary decimal.Decimal
	HourlyRate    decimal.Decimal
	OvertimeRate  decimal.Decimal // multiplier, e.g. 1.5
	PieceRate     decimal.Decimal // per unit for piece work

	Benefits Benefits

	AttendanceBonus   decimal.Decimal
	ProductivityBonus decimal.Decimal
	PerformanceBonus  decimal.Decimal

	IsActive  bool
	IsDeleted bool
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WageHistory is an immutable before/after snapshot appended whenever an
// admin mutates a worker's wage fields. Advisory audit trail; never read
// back by the payroll engine.
type WageHistory struct {
	ID             string
	WorkerID       string
	ChangeType     string
	PreviousValues map[string]decimal.Decimal
	NewValues      map[string]decimal.Decimal
	EffectiveDate  time.Time
	Reason         string
	CreatedBy      string
	CreatedAt      time.Time
}
