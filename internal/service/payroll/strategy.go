package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hillfarm/workforce-backend-go/internal/domain/worker"
)

// PeriodInput is the attendance-derived raw material one strategy turns
// into a base salary.
type PeriodInput struct {
	Year           int
	Month          int
	WorkedDays     int
	TotalHours     decimal.Decimal
	OvertimeHours  decimal.Decimal
	PieceWorkUnits decimal.Decimal
}

// DaysInMonth returns the calendar length of the period's month.
func (p PeriodInput) DaysInMonth() int {
	switch p.Month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if p.Year%4 == 0 && (p.Year%100 != 0 || p.Year%400 == 0) {
			return 29
		}
		return 28
	}
}

// WageStrategy computes the pay components one wage type owns. Each
// strategy reads only the rate fields of its wage type; overtime is an
// hourly concern, so piece workers never earn it.
type WageStrategy interface {
	Name() string
	BaseSalary(w worker.Worker, p PeriodInput) decimal.Decimal
	OvertimePay(w worker.Worker, p PeriodInput) decimal.Decimal
}

// defaultOvertimeRate applies when a worker profile carries no explicit
// overtime multiplier.
var defaultOvertimeRate = decimal.NewFromFloat(1.5)

func hourlyOvertimePay(w worker.Worker, p PeriodInput) decimal.Decimal {
	rate := w.OvertimeRate
	if rate.IsZero() {
		rate = defaultOvertimeRate
	}
	return p.OvertimeHours.Mul(w.HourlyRate).Mul(rate).Round(2)
}

type dailyStrategy struct{}

func (dailyStrategy) Name() string { return string(worker.WageTypeDaily) }

func (dailyStrategy) BaseSalary(w worker.Worker, p PeriodInput) decimal.Decimal {
	return w.DailyWage.Mul(decimal.NewFromInt(int64(p.WorkedDays)))
}

func (dailyStrategy) OvertimePay(w worker.Worker, p PeriodInput) decimal.Decimal {
	return hourlyOvertimePay(w, p)
}

type monthlyStrategy struct{}

func (monthlyStrategy) Name() string { return string(worker.WageTypeMonthly) }

// BaseSalary prorates the monthly salary by days worked over the calendar
// month, rounded half-up to 2 decimal places.
func (monthlyStrategy) BaseSalary(w worker.Worker, p PeriodInput) decimal.Decimal {
	return w.MonthlySalary.
		Mul(decimal.NewFromInt(int64(p.WorkedDays))).
		Div(decimal.NewFromInt(int64(p.DaysInMonth()))).
		Round(2)
}

func (monthlyStrategy) OvertimePay(w worker.Worker, p PeriodInput) decimal.Decimal {
	return hourlyOvertimePay(w, p)
}

type pieceRateStrategy struct{}

func (pieceRateStrategy) Name() string { return string(worker.WageTypePieceRate) }

func (pieceRateStrategy) BaseSalary(w worker.Worker, p PeriodInput) decimal.Decimal {
	return w.PieceRate.Mul(p.PieceWorkUnits)
}

// Piece workers are paid per unit produced, not per hour worked.
func (pieceRateStrategy) OvertimePay(worker.Worker, PeriodInput) decimal.Decimal {
	return decimal.Zero
}

// SelectStrategy maps a wage type to its strategy. Contract workers are
// paid per day worked, so contract and any unknown type resolve to the
// daily strategy.
func SelectStrategy(t worker.WageType) WageStrategy {
	switch t {
	case worker.WageTypeMonthly:
		return monthlyStrategy{}
	case worker.WageTypePieceRate:
		return pieceRateStrategy{}
	default:
		return dailyStrategy{}
	}
}
