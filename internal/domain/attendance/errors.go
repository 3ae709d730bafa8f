package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out state machine errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
