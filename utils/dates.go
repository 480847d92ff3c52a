// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// SameMonthDay reports whether a stored date string falls on the same
// month and day as t, ignoring the year. Dates arrive from documents as
// ISO strings ("2006-01-02" or a full timestamp); anything unparseable is
// simply not a match.
func SameMonthDay(date string, t time.Time) bool {
	if len(date) < 10 {
		return false
	}
	parsed, err := time.Parse("2006-01-02", date[:10])
	if err != nil {
		return false
	}
	return parsed.Month() == t.Month() && parsed.Day() == t.Day()
}
