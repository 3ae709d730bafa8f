package workcalendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var weekdays = map[time.Weekday]bool{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 6, 15, 14, 32, 9, 123, time.Local)
	got := StartOfDay(ts)
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.Local), got)

	// Idempotent
	assert.Equal(t, got, StartOfDay(got))
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2026, 6, 15, 0, 0, 0, 0, time.Local)
	got := EndOfDay(ts)
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.Equal(t, 59, got.Second())
	assert.True(t, got.Before(StartOfDay(ts).AddDate(0, 0, 1)))
}

func TestStartOfMonth(t *testing.T) {
	ts := time.Date(2026, 6, 15, 14, 32, 9, 0, time.Local)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local), StartOfMonth(ts))
}

func TestEndOfMonth(t *testing.T) {
	ts := time.Date(2026, 6, 15, 14, 32, 9, 0, time.Local)
	got := EndOfMonth(ts)
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 30, got.Day())
	assert.Equal(t, 23, got.Hour())

	// February in a leap year
	feb := EndOfMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local))
	assert.Equal(t, 29, feb.Day())
}

func collectDays(start, end time.Time) []time.Time {
	var days []time.Time
	for day := range EachDay(start, end) {
		days = append(days, day)
	}
	return days
}

func TestEachDay_InclusiveCount(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.Local)
	end := time.Date(2026, 6, 7, 22, 0, 0, 0, time.Local)

	days := collectDays(start, end)
	assert.Len(t, days, 7)
	assert.Equal(t, StartOfDay(start), days[0])
	assert.Equal(t, StartOfDay(end), days[6])
}

func TestEachDay_SingleDay(t *testing.T) {
	morning := time.Date(2026, 6, 3, 8, 0, 0, 0, time.Local)
	evening := time.Date(2026, 6, 3, 20, 0, 0, 0, time.Local)

	days := collectDays(morning, evening)
	assert.Len(t, days, 1)
	assert.Equal(t, StartOfDay(morning), days[0])
}

func TestEachDay_EmptyWhenStartAfterEnd(t *testing.T) {
	start := time.Date(2026, 6, 10, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 6, 9, 23, 59, 0, 0, time.Local)

	assert.Empty(t, collectDays(start, end))
}

func TestEachDay_CrossMonth(t *testing.T) {
	start := time.Date(2026, 1, 30, 12, 0, 0, 0, time.Local)
	end := time.Date(2026, 2, 2, 12, 0, 0, 0, time.Local)

	days := collectDays(start, end)
	assert.Len(t, days, 4)
	assert.Equal(t, "2026-02-02", DayKey(days[3]))
}

func TestEachDay_Restartable(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 6, 5, 0, 0, 0, 0, time.Local)

	seq := EachDay(start, end)
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, first, second)
}

func TestIsWorkingDay(t *testing.T) {
	monday := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)
	saturday := time.Date(2026, 6, 6, 0, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 6, 7, 0, 0, 0, 0, time.Local)

	assert.True(t, IsWorkingDay(monday, weekdays))
	assert.False(t, IsWorkingDay(saturday, weekdays))
	assert.False(t, IsWorkingDay(sunday, weekdays))
}

func TestCountWorkingDays(t *testing.T) {
	// Single weekend day
	saturday := time.Date(2026, 6, 6, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 0, CountWorkingDays(saturday, saturday, weekdays))

	// Single weekday
	monday := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 1, CountWorkingDays(monday, monday, weekdays))

	// Full week, Monday through Sunday
	sunday := time.Date(2026, 6, 7, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 5, CountWorkingDays(monday, sunday, weekdays))

	// June 2026 has 22 weekdays
	assert.Equal(t, 22, CountWorkingDays(
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.Local),
		weekdays,
	))
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, 6, 3, 17, 45, 0, 0, time.Local)
	assert.Equal(t, "2026-06-03", DayKey(ts))

	// Keys order lexically
	assert.Less(t, DayKey(ts), DayKey(ts.AddDate(0, 0, 1)))
}
