package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hillfarm/workforce-backend-go/internal/domain/worker"
)

func TestDailyStrategy(t *testing.T) {
	w := worker.Worker{
		WageType:  worker.WageTypeDaily,
		DailyWage: decimal.NewFromInt(500),
	}
	input := PeriodInput{Year: 2026, Month: 8, WorkedDays: 20}

	got := SelectStrategy(w.WageType).BaseSalary(w, input)
	assert.True(t, got.Equal(decimal.NewFromInt(10000)), "got %s", got)
}

func TestMonthlyStrategyProratesByCalendarDays(t *testing.T) {
	w := worker.Worker{
		WageType:      worker.WageTypeMonthly,
		MonthlySalary: decimal.NewFromInt(30000),
	}
	input := PeriodInput{Year: 2026, Month: 8, WorkedDays: 20} // August has 31 days

	got := SelectStrategy(w.WageType).BaseSalary(w, input)
	assert.True(t, got.Equal(decimal.RequireFromString("19354.84")), "got %s", got)
}

func TestMonthlyStrategyIgnoresOtherRates(t *testing.T) {
	w := worker.Worker{
		WageType:      worker.WageTypeMonthly,
		MonthlySalary: decimal.NewFromInt(31000),
		// Poisoned rates that must not leak into a monthly calculation.
		DailyWage: decimal.NewFromInt(999999),
		PieceRate: decimal.NewFromInt(888888),
	}
	input := PeriodInput{Year: 2026, Month: 8, WorkedDays: 31, PieceWorkUnits: decimal.NewFromInt(50)}

	got := SelectStrategy(w.WageType).BaseSalary(w, input)
	assert.True(t, got.Equal(decimal.NewFromInt(31000)), "got %s", got)
}

func TestPieceRateStrategy(t *testing.T) {
	w := worker.Worker{
		WageType:  worker.WageTypePieceRate,
		PieceRate: decimal.RequireFromString("2.50"),
	}
	input := PeriodInput{Year: 2026, Month: 8, PieceWorkUnits: decimal.NewFromInt(400)}

	got := SelectStrategy(w.WageType).BaseSalary(w, input)
	assert.True(t, got.Equal(decimal.NewFromInt(1000)), "got %s", got)
}

func TestOvertimePayByWageType(t *testing.T) {
	w := worker.Worker{
		HourlyRate:   decimal.NewFromInt(100),
		OvertimeRate: decimal.RequireFromString("1.5"),
	}
	input := PeriodInput{Year: 2026, Month: 8, OvertimeHours: decimal.NewFromInt(10)}

	daily := SelectStrategy(worker.WageTypeDaily).OvertimePay(w, input)
	assert.True(t, daily.Equal(decimal.NewFromInt(1500)), "got %s", daily)

	monthly := SelectStrategy(worker.WageTypeMonthly).OvertimePay(w, input)
	assert.True(t, monthly.Equal(decimal.NewFromInt(1500)), "got %s", monthly)

	// Per-unit pay has no hourly component to multiply.
	piece := SelectStrategy(worker.WageTypePieceRate).OvertimePay(w, input)
	assert.True(t, piece.IsZero(), "got %s", piece)
}

func TestOvertimePayDefaultsMultiplier(t *testing.T) {
	w := worker.Worker{HourlyRate: decimal.NewFromInt(100)}
	input := PeriodInput{Year: 2026, Month: 8, OvertimeHours: decimal.NewFromInt(2)}

	got := SelectStrategy(worker.WageTypeDaily).OvertimePay(w, input)
	assert.True(t, got.Equal(decimal.NewFromInt(300)), "got %s", got)
}

func TestContractFallsBackToDaily(t *testing.T) {
	assert.Equal(t, "daily", SelectStrategy(worker.WageTypeContract).Name())
	assert.Equal(t, "daily", SelectStrategy(worker.WageType("unknown")).Name())
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, PeriodInput{Year: 2026, Month: 8}.DaysInMonth())
	assert.Equal(t, 30, PeriodInput{Year: 2026, Month: 9}.DaysInMonth())
	assert.Equal(t, 28, PeriodInput{Year: 2026, Month: 2}.DaysInMonth())
	assert.Equal(t, 29, PeriodInput{Year: 2028, Month: 2}.DaysInMonth())
	assert.Equal(t, 28, PeriodInput{Year: 2100, Month: 2}.DaysInMonth())
	assert.Equal(t, 29, PeriodInput{Year: 2000, Month: 2}.DaysInMonth())
}
