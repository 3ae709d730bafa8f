package attendance

import (
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MyAttendanceRequest struct {
	// Month in "YYYY-MM" format. Empty means the current month.
	Month string `json:"month"`
}

func (r *MyAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Month) {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeamSummaryRequest struct {
	Department string `json:"department"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *TeamSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID           string  `json:"id,omitempty"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Status       string  `json:"status"`
	TotalHours   float64 `json:"total_hours"`
	IsVirtual    bool    `json:"is_virtual,omitempty"`
}

type UserSummaryResponse struct {
	Counts     map[string]int `json:"counts"`
	TotalHours float64        `json:"total_hours"`
}

type MyAttendanceResponse struct {
	Month   string              `json:"month"`
	Records []RecordResponse    `json:"records"`
	Summary UserSummaryResponse `json:"summary"`
}

type TeamSummaryResponse struct {
	Department  string         `json:"department"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	MemberCount int            `json:"member_count"`
	Counts      map[string]int `json:"counts"`
}
