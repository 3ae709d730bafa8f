package attendance

import (
	"time"

	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/attendance"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/workcalendar"
)

// SummarizeUser folds one employee's stored records for a range into status
// counts and total hours, then adds one absent per elapsed working day that
// has no record. The absent count equals what SynthesizeAbsences would emit
// for the same inputs; the analytic shortcut just skips materializing them.
func SummarizeUser(records []attendance.Record, rangeStart, rangeEnd, now time.Time, settings attendance.Settings) attendance.UserSummary {
	summary := attendance.UserSummary{Counts: attendance.StatusCounts{}}
	for _, rec := range records {
		summary.Counts[rec.Status]++
		// Re-round after every addition so hour sums cannot drift.
		summary.TotalHours = round2(summary.TotalHours + rec.TotalHours)
	}

	effectiveEnd := effectiveRangeEnd(rangeEnd, now)
	startDay := workcalendar.StartOfDay(rangeStart)
	endKey := workcalendar.DayKey(effectiveEnd)
	if endKey < workcalendar.DayKey(startDay) {
		return summary
	}

	tracked := make(map[string]struct{}, len(records))
	for _, rec := range records {
		day := workcalendar.StartOfDay(rec.Date)
		if workcalendar.DayKey(day) > endKey || !workcalendar.IsWorkingDay(day, settings.WorkDays) {
			continue
		}
		tracked[workcalendar.DayKey(day)] = struct{}{}
	}

	workingDays := workcalendar.CountWorkingDays(startDay, effectiveEnd, settings.WorkDays)
	if unresolved := workingDays - len(tracked); unresolved > 0 {
		summary.Counts[attendance.StatusAbsent] += unresolved
	}

	return summary
}

// SummarizeTeam folds a team's stored records for a range into status counts
// and adds one absent per expected employee-day with no unique record.
// A team of zero members short-circuits to an empty summary without scanning
// the range.
func SummarizeTeam(records []attendance.Record, memberCount int, rangeStart, rangeEnd, now time.Time, settings attendance.Settings) attendance.TeamSummary {
	summary := attendance.TeamSummary{Counts: attendance.StatusCounts{}}
	if memberCount == 0 {
		return summary
	}

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent, attendance.StatusAbsent, attendance.StatusLate, attendance.StatusHalfDay:
			summary.Counts[rec.Status]++
		}
	}

	effectiveEnd := effectiveRangeEnd(rangeEnd, now)
	startDay := workcalendar.StartOfDay(rangeStart)
	endKey := workcalendar.DayKey(effectiveEnd)
	if endKey < workcalendar.DayKey(startDay) {
		return summary
	}

	expected := workcalendar.CountWorkingDays(startDay, effectiveEnd, settings.WorkDays) * memberCount

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		day := workcalendar.StartOfDay(rec.Date)
		if workcalendar.DayKey(day) > endKey || !workcalendar.IsWorkingDay(day, settings.WorkDays) {
			continue
		}
		seen[rec.EmployeeID+"|"+workcalendar.DayKey(day)] = struct{}{}
	}

	if missing := expected - len(seen); missing > 0 {
		summary.Counts[attendance.StatusAbsent] += missing
	}

	return summary
}
