package payroll

import "errors"

// Payroll domain errors
var (
	ErrSummaryNotFound    = errors.New("salary summary not found for this period")
	ErrEntryNotFound      = errors.New("payroll entry not found")
	ErrInvalidEntryType   = errors.New("invalid payroll entry type")
	ErrInvalidAmount      = errors.New("entry amount must be greater than zero")
	ErrSummaryNotComputed = errors.New("salary has not been calculated for this period")
)
