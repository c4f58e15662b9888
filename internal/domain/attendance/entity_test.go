package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkedHours(t *testing.T) {
	checkIn := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(4*time.Hour + 30*time.Minute)

	closed := Attendance{CheckInAt: &checkIn, CheckOutAt: &checkOut}
	assert.InDelta(t, 4.5, closed.WorkedHours(), 0.001)

	// A session still open counts as a standard working day.
	open := Attendance{CheckInAt: &checkIn}
	assert.Equal(t, float64(DefaultOpenDayHours), open.WorkedHours())

	assert.Zero(t, Attendance{}.WorkedHours())
}
