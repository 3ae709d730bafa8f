// Package workcalendar provides calendar-day arithmetic for attendance
// computations. Every "day" boundary in the system goes through StartOfDay /
// EndOfDay so day identity is derived the same way everywhere.
package workcalendar

import (
	"iter"
	"time"
)

// StartOfDay truncates t to the first instant of its calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfMonth returns the first instant of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of the month containing t.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}

// EachDay yields one midnight marker per calendar day from StartOfDay(start)
// to StartOfDay(end) inclusive. The sequence is empty when start is after end
// and can be ranged over more than once.
func EachDay(start, end time.Time) iter.Seq[time.Time] {
	first := StartOfDay(start)
	last := StartOfDay(end)
	return func(yield func(time.Time) bool) {
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			if !yield(day) {
				return
			}
		}
	}
}

// DayKey returns the canonical "YYYY-MM-DD" identity of t's calendar day.
// Keys compare correctly with < and > regardless of the time's location, so
// they are used for day-set membership and boundary checks instead of raw
// time.Time comparisons.
func DayKey(t time.Time) string {
	return StartOfDay(t).Format(time.DateOnly)
}

// IsWorkingDay reports whether day's weekday is in the working-day set.
func IsWorkingDay(day time.Time, workDays map[time.Weekday]bool) bool {
	return workDays[day.Weekday()]
}

// CountWorkingDays counts the working days from start to end inclusive.
func CountWorkingDays(start, end time.Time, workDays map[time.Weekday]bool) int {
	count := 0
	for day := range EachDay(start, end) {
		if IsWorkingDay(day, workDays) {
			count++
		}
	}
	return count
}
