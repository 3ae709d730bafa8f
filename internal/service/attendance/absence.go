package attendance

import (
	"time"

	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/attendance"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/workcalendar"
)

// SynthesizeAbsences produces a virtual absent record for every working day in
// [rangeStart, min(rangeEnd, yesterday)] that no record in existing covers.
// Today and future days are never synthesized: the day is still in progress or
// has not happened. Returns nil when the effective range is empty.
//
// The output is oldest first and value-identical across repeated calls with
// the same inputs; the caller merges and re-sorts for display.
func SynthesizeAbsences(employeeID string, rangeStart, rangeEnd, now time.Time, existing []attendance.Record, settings attendance.Settings) []attendance.Record {
	effectiveEnd := effectiveRangeEnd(rangeEnd, now)
	startDay := workcalendar.StartOfDay(rangeStart)
	if workcalendar.DayKey(effectiveEnd) < workcalendar.DayKey(startDay) {
		return nil
	}

	covered := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		covered[workcalendar.DayKey(rec.Date)] = struct{}{}
	}

	var virtual []attendance.Record
	for day := range workcalendar.EachDay(startDay, effectiveEnd) {
		if !workcalendar.IsWorkingDay(day, settings.WorkDays) {
			continue
		}
		if _, ok := covered[workcalendar.DayKey(day)]; ok {
			continue
		}
		virtual = append(virtual, attendance.NewVirtualAbsence(employeeID, day))
	}

	return virtual
}

// effectiveRangeEnd clamps a range end to yesterday, the last day that can be
// judged absent.
func effectiveRangeEnd(rangeEnd, now time.Time) time.Time {
	yesterday := workcalendar.StartOfDay(now).AddDate(0, 0, -1)
	endDay := workcalendar.StartOfDay(rangeEnd)
	if workcalendar.DayKey(endDay) < workcalendar.DayKey(yesterday) {
		return endDay
	}
	return yesterday
}
