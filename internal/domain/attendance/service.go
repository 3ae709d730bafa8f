package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
// Caller identity comes from the JWT claims in ctx.
type AttendanceService interface {
	// CheckIn records the first check-in of the caller's day.
	// A second attempt on the same day fails with ErrAlreadyCheckedIn.
	CheckIn(ctx context.Context) (RecordResponse, error)

	// CheckOut closes the caller's open record for today and derives
	// status and total hours.
	CheckOut(ctx context.Context) (RecordResponse, error)

	// GetMyAttendance returns the caller's records for one month, with
	// virtual absences filled in for elapsed working days, newest first,
	// plus the monthly summary.
	GetMyAttendance(ctx context.Context, req MyAttendanceRequest) (MyAttendanceResponse, error)

	// GetTeamSummary computes the team-wide rollup for a department over a
	// date range, including inferred missing entries.
	GetTeamSummary(ctx context.Context, req TeamSummaryRequest) (TeamSummaryResponse, error)
}
