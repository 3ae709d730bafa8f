package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// The store enforces uniqueness on (employee_id, date); Create must surface a
// violation of that constraint as ErrAlreadyCheckedIn so a lost race between
// two simultaneous check-ins is indistinguishable from a plain duplicate.
type AttendanceRepository interface {
	// Create inserts a new record for an employee-day.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate retrieves the record for one employee-day, nil if none.
	// Used to prevent double check-in and to locate the open record on check-out.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// Update persists the check-out mutation of an existing record.
	Update(ctx context.Context, record Record) error

	// ListByEmployeeBetween retrieves one employee's records with date in
	// [start, end], newest first.
	ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// ListByEmployeesBetween retrieves records for a set of employees with
	// date in [start, end], newest first.
	ListByEmployeesBetween(ctx context.Context, employeeIDs []string, start, end time.Time) ([]Record, error)
}
