// Package calendar provides the month and weekday arithmetic shared by the
// attendance and donation reports. Month keys throughout the system are
// canonical English month names ("January" .. "December").
package calendar

import (
	"strings"
	"time"
)

// Months lists the canonical month names in calendar order.
var Months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Weekdays lists the roster day names, Monday first.
var Weekdays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// NormalizeMonth canonicalizes a month string to Titlecase so that map keys
// match case-insensitively. It is idempotent.
func NormalizeMonth(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// MonthIndex resolves a month name to its time.Month. Unknown names return
// (0, false).
func MonthIndex(month string) (time.Month, bool) {
	name := NormalizeMonth(month)
	for i, m := range Months {
		if m == name {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// DaysInMonth returns the number of days in the given (year, month) pair,
// leap years included. Unknown month names yield 0.
func DaysInMonth(year int, month string) int {
	m, ok := MonthIndex(month)
	if !ok {
		return 0
	}
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekend reports whether the given date falls on a Saturday or Sunday.
// Invalid dates report false.
func IsWeekend(year int, month string, day int) bool {
	m, ok := MonthIndex(month)
	if !ok || day < 1 || day > DaysInMonth(year, month) {
		return false
	}
	wd := time.Date(year, m, day, 0, 0, 0, 0, time.UTC).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NormalizeWeekday canonicalizes a roster day name. Unknown names return
// ("", false).
func NormalizeWeekday(s string) (string, bool) {
	name := NormalizeMonth(s)
	for _, d := range Weekdays {
		if d == name {
			return d, true
		}
	}
	return "", false
}
