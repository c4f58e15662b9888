package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryTypeReceived  EntryType = "received"
	EntryTypeAdvance   EntryType = "advance"
	EntryTypeDeduction EntryType = "deduction"
	EntryTypeBonus     EntryType = "bonus"
)

var EntryTypeValues = []string{
	string(EntryTypeReceived),
	string(EntryTypeAdvance),
	string(EntryTypeDeduction),
	string(EntryTypeBonus),
}

type SummaryStatus string

const (
	SummaryStatusDraft      SummaryStatus = "draft"
	SummaryStatusCalculated SummaryStatus = "calculated"
)

// Entry is one append-only ledger row against a staff member's salary
// period. Entries are never edited or deleted; corrections are new rows.
type Entry struct {
	ID      string
	StaffID string
	Year    int
	Month   int

	Type   EntryType
	Amount decimal.Decimal
	Note   string

	CreatedBy string
	CreatedAt time.Time
}

// RateSnapshot freezes the worker's rates as they were at calculation
// time, so a later wage change cannot silently rewrite a past period.
type RateSnapshot struct {
	DailyWage     decimal.Decimal `json:"daily_wage"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
	PieceRate     decimal.Decimal `json:"piece_rate"`
}

// Summary is the computed salary state for one staff member and period,
// unique per (StaffID, Year, Month). The computed fields come from the
// calculator; the ledger totals come from folding Entry rows, never from
// in-place increments.
type Summary struct {
	ID      string
	StaffID string
	Year    int
	Month   int

	WageType     string
	WageCategory string

	WorkedDays     int
	LateDays       int
	TotalHours     decimal.Decimal
	OvertimeHours  decimal.Decimal
	PieceWorkUnits decimal.Decimal

	Rates RateSnapshot

	BaseSalary      decimal.Decimal
	OvertimePay     decimal.Decimal
	PieceWorkPay    decimal.Decimal
	TotalBenefits   decimal.Decimal
	TotalBonuses    decimal.Decimal
	GrossAmount     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetAmount       decimal.Decimal

	// Ledger-derived
	BonusAmount     decimal.Decimal
	DeductionAmount decimal.Decimal
	ReceivedAmount  decimal.Decimal
	AdvanceAmount   decimal.Decimal
	PendingAmount   decimal.Decimal

	Status       SummaryStatus
	CalculatedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Totals is the result of folding a period's ledger rows.
type Totals struct {
	Bonus     decimal.Decimal
	Deduction decimal.Decimal
	Received  decimal.Decimal
	Advance   decimal.Decimal
}

// FoldEntries reduces ledger rows into period totals. Order of rows never
// matters; the fold is a plain sum per type.
func FoldEntries(entries []Entry) Totals {
	t := Totals{
		Bonus:     decimal.Zero,
		Deduction: decimal.Zero,
		Received:  decimal.Zero,
		Advance:   decimal.Zero,
	}
	for _, e := range entries {
		switch e.Type {
		case EntryTypeBonus:
			t.Bonus = t.Bonus.Add(e.Amount)
		case EntryTypeDeduction:
			t.Deduction = t.Deduction.Add(e.Amount)
		case EntryTypeReceived:
			t.Received = t.Received.Add(e.Amount)
		case EntryTypeAdvance:
			t.Advance = t.Advance.Add(e.Amount)
		}
	}
	return t
}

// Pending computes the outstanding balance for a gross amount under
// these totals, floored at zero so overpayment never produces a negative
// claim. Advances are tracked for reporting but settled outside the
// period balance, so they do not reduce it.
func (t Totals) Pending(gross decimal.Decimal) decimal.Decimal {
	pending := gross.Add(t.Bonus).Sub(t.Deduction).Sub(t.Received)
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}
