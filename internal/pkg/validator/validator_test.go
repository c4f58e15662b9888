package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2026-08-23"))
	assert.False(t, IsValidDate("23-08-2026"))
	assert.False(t, IsValidDate("2026-13-01"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("09:00"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.False(t, IsValidClockTime("9am"))
	assert.False(t, IsValidClockTime("24:00"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "year", Message: "year is out of range"},
		{Field: "month", Message: "month must be between 1 and 12"},
	}

	assert.Equal(t, "year: year is out of range; month: month must be between 1 and 12", errs.Error())
	assert.Equal(t, map[string]string{
		"year":  "year is out of range",
		"month": "month must be between 1 and 12",
	}, errs.ToMap())
}
