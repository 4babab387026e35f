package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 3, 14, 15, 9, 26, 0, time.FixedZone("X", 3600))
	assert.Equal(t, date(2026, 3, 14), DateOnly(in))
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, DaysInMonth(tt.year, tt.month), "%d-%s", tt.year, tt.month)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{"simple", date(2026, 1, 15), 1, date(2026, 2, 15)},
		{"year rollover", date(2026, 11, 15), 3, date(2027, 2, 15)},
		{"clamp to february", date(2026, 1, 31), 1, date(2026, 2, 28)},
		{"clamp to leap february", date(2028, 1, 31), 1, date(2028, 2, 29)},
		{"clamp to 30 day month", date(2026, 3, 31), 1, date(2026, 4, 30)},
		{"thirty years", date(2026, 1, 1), 360, date(2056, 1, 1)},
		{"negative", date(2026, 3, 31), -1, date(2026, 2, 28)},
		{"negative across year", date(2026, 1, 10), -13, date(2024, 12, 10)},
		{"zero", date(2026, 5, 5), 0, date(2026, 5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddMonths(tt.start, tt.months))
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		later    time.Time
		earlier  time.Time
		expected int
	}{
		{"same date", date(2026, 1, 1), date(2026, 1, 1), 0},
		{"one month", date(2026, 2, 1), date(2026, 1, 1), 1},
		{"partial month", date(2026, 2, 14), date(2026, 1, 15), 0},
		{"clamped end counts as full", date(2026, 2, 28), date(2026, 1, 31), 1},
		{"ninety nine months", date(2056, 1, 1), date(2047, 10, 1), 99},
		{"reversed", date(2026, 1, 1), date(2026, 4, 1), -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthsBetween(tt.later, tt.earlier))
		})
	}
}

func TestMonthsBetweenInvertsAddMonths(t *testing.T) {
	starts := []time.Time{date(2026, 1, 31), date(2026, 8, 30), date(2024, 2, 29), date(2026, 6, 1)}
	for _, start := range starts {
		for a := 0; a <= 48; a += 7 {
			for b := 0; b <= 48; b += 5 {
				got := MonthsBetween(AddMonths(start, a), AddMonths(start, b))
				assert.Equal(t, a-b, got, "start=%s a=%d b=%d", start.Format("2006-01-02"), a, b)
			}
		}
	}
}

func TestIsLastDayOfMonth(t *testing.T) {
	assert.True(t, IsLastDayOfMonth(date(2026, 2, 28)))
	assert.False(t, IsLastDayOfMonth(date(2028, 2, 28)))
	assert.True(t, IsLastDayOfMonth(date(2026, 12, 31)))
}
