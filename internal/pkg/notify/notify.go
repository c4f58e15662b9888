package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

// SalaryCalculatedEvent is emitted after a salary summary is computed or
// recomputed.
type SalaryCalculatedEvent struct {
	StaffID       string
	Year          int
	Month         int
	GrossAmount   decimal.Decimal
	PendingAmount decimal.Decimal
}

// PaymentRecordedEvent is emitted after a ledger entry is appended to a
// salary period.
type PaymentRecordedEvent struct {
	StaffID       string
	Year          int
	Month         int
	Type          string
	Amount        decimal.Decimal
	PendingAmount decimal.Decimal
}

// Notifier delivers payroll events to staff. Implementations must be safe
// for concurrent use.
type Notifier interface {
	SalaryCalculated(ctx context.Context, ev SalaryCalculatedEvent) error
	PaymentRecorded(ctx context.Context, ev PaymentRecordedEvent) error
}

// LogNotifier writes events to the structured log. It stands in for a
// push or email channel in deployments that have none configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SalaryCalculated(_ context.Context, ev SalaryCalculatedEvent) error {
	n.logger.Info("salary calculated",
		slog.String("staff_id", ev.StaffID),
		slog.Int("year", ev.Year),
		slog.Int("month", ev.Month),
		slog.String("gross_amount", ev.GrossAmount.String()),
		slog.String("pending_amount", ev.PendingAmount.String()),
	)
	return nil
}

func (n *LogNotifier) PaymentRecorded(_ context.Context, ev PaymentRecordedEvent) error {
	n.logger.Info("payment recorded",
		slog.String("staff_id", ev.StaffID),
		slog.Int("year", ev.Year),
		slog.Int("month", ev.Month),
		slog.String("type", ev.Type),
		slog.String("amount", ev.Amount.String()),
		slog.String("pending_amount", ev.PendingAmount.String()),
	)
	return nil
}

// DispatchSalaryCalculated delivers ev on a background goroutine so
// callers never block on the notification channel. Failures are logged
// and dropped; salary computation must not depend on delivery.
func DispatchSalaryCalculated(logger *slog.Logger, n Notifier, ev SalaryCalculatedEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := n.SalaryCalculated(ctx, ev); err != nil {
			logger.Error("failed to deliver salary notification",
				slog.String("staff_id", ev.StaffID),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// DispatchPaymentRecorded is the fire-and-forget counterpart for ledger
// appends.
func DispatchPaymentRecorded(logger *slog.Logger, n Notifier, ev PaymentRecordedEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := n.PaymentRecorded(ctx, ev); err != nil {
			logger.Error("failed to deliver payment notification",
				slog.String("staff_id", ev.StaffID),
				slog.String("error", err.Error()),
			)
		}
	}()
}
