package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusHoliday Status = "holiday"
)

// Record is one employee-day of attendance. Identity is (EmployeeID, Date);
// the store enforces that pair as a uniqueness constraint. Date is always
// truncated to midnight and acts as the partition key.
//
// IsVirtual discriminates synthesized absence entries from stored rows.
// Virtual records are rebuilt on every read, never persisted, and always
// carry StatusAbsent with nil check times and zero hours.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status
	TotalHours float64
	IsVirtual  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Populated by the export join, nil elsewhere.
	EmployeeName  *string
	EmployeeEmail *string
	Department    *string
}

// NewVirtualAbsence builds a synthesized absent record for one employee-day.
// Identity is the day itself; virtual records have no stored ID.
func NewVirtualAbsence(employeeID string, day time.Time) Record {
	return Record{
		EmployeeID: employeeID,
		Date:       day,
		Status:     StatusAbsent,
		IsVirtual:  true,
	}
}

// StatusCounts maps a status to how many records carried it. Kept separate
// from any numeric totals so counts and hour sums can never be confused.
type StatusCounts map[Status]int

// UserSummary is the per-employee monthly rollup.
type UserSummary struct {
	Counts     StatusCounts
	TotalHours float64
}

// TeamSummary is the team-wide rollup over a range.
type TeamSummary struct {
	Counts StatusCounts
}
