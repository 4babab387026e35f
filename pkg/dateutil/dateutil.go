package dateutil

import (
	"time"
)

// DateOnly strips the clock portion of t and returns midnight UTC of the same calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// IsLastDayOfMonth reports whether date falls on the final day of its month
func IsLastDayOfMonth(date time.Time) bool {
	return date.Day() == DaysInMonth(date.Year(), date.Month())
}

// AddMonths adds a number of calendar months to a date. Unlike time.AddDate the
// day of month is clamped to the length of the target month, so Jan 31 + 1
// month is Feb 28 (or 29) rather than early March.
func AddMonths(date time.Time, months int) time.Time {
	total := int(date.Month()) - 1 + months
	year := date.Year() + total/12
	m := total % 12
	if m < 0 {
		m += 12
		year--
	}
	month := time.Month(m + 1)
	day := date.Day()
	if dim := DaysInMonth(year, month); day > dim {
		day = dim
	}
	return time.Date(year, month, day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// MonthsBetween returns the number of full calendar months from earlier to
// later. It is negative when later precedes earlier. A month whose end was
// clamped (later is the last day of a shorter month) counts as full.
func MonthsBetween(later, earlier time.Time) int {
	if later.Before(earlier) {
		return -MonthsBetween(earlier, later)
	}
	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	if later.Day() < earlier.Day() && !IsLastDayOfMonth(later) {
		months--
	}
	return months
}
