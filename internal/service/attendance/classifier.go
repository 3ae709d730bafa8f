package attendance

import (
	"math"
	"time"

	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/attendance"
)

// halfDayMinimum is the shortest on-time shift still counted as a full day.
const halfDayMinimum = 4 * time.Hour

// ClassifyStatus derives a day's status from its check times.
//
// The late check runs before the half-day check: an arrival past the
// threshold is late no matter how long the shift was.
func ClassifyStatus(checkIn, checkOut *time.Time, settings attendance.Settings) attendance.Status {
	if checkIn == nil {
		return attendance.StatusAbsent
	}

	minuteOfDay := checkIn.Hour()*60 + checkIn.Minute()
	if minuteOfDay > settings.LateThresholdMinuteOfDay() {
		return attendance.StatusLate
	}

	if checkOut != nil && checkOut.Sub(*checkIn) < halfDayMinimum {
		return attendance.StatusHalfDay
	}

	return attendance.StatusPresent
}

// WorkedHours returns the hours between check-in and check-out, floored at
// zero and rounded to two decimals.
func WorkedHours(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	if hours < 0 {
		hours = 0
	}
	return round2(hours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
