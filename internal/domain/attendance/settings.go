package attendance

import "time"

// Settings holds the office-hours rules every attendance computation runs
// against. It is built once from process configuration and passed explicitly;
// the engine never reads rules from ambient state.
type Settings struct {
	// OfficeStartHour is the hour (0-23) the office day begins.
	OfficeStartHour int
	// LateThresholdMinutes is the grace period after office start.
	LateThresholdMinutes int
	// WorkDays is the set of weekdays that count as working days.
	WorkDays map[time.Weekday]bool
}

// LateThresholdMinuteOfDay returns the last on-time minute of the day.
// A check-in strictly after this minute is late.
func (s Settings) LateThresholdMinuteOfDay() int {
	return s.OfficeStartHour*60 + s.LateThresholdMinutes
}

// DefaultWorkDays is Monday through Friday.
func DefaultWorkDays() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}
}
