package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/attendance"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/employee"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/clock"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/validator"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/workcalendar"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock    clock.Clock
	settings attendance.Settings
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	settings attendance.Settings,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
		settings:             settings,
	}
}

// employeeIDFromContext extracts employee_id from JWT claims.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		Date:         workcalendar.DayKey(rec.Date),
		CheckInTime:  timePtrToString(rec.CheckIn),
		CheckOutTime: timePtrToString(rec.CheckOut),
		Status:       string(rec.Status),
		TotalHours:   rec.TotalHours,
		IsVirtual:    rec.IsVirtual,
	}
}

func toCountsResponse(counts attendance.StatusCounts) map[string]int {
	result := make(map[string]int, len(counts))
	for status, n := range counts {
		result[string(status)] = n
	}
	return result
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.RecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.clock.Now()
	today := workcalendar.StartOfDay(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	record := attendance.Record{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    &now,
		Status:     ClassifyStatus(&now, nil, s.settings),
	}

	// A concurrent check-in that wins the race surfaces here as
	// ErrAlreadyCheckedIn from the store's uniqueness constraint.
	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.RecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.clock.Now()
	today := workcalendar.StartOfDay(now)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOut = &now
	record.Status = ClassifyStatus(record.CheckIn, record.CheckOut, s.settings)
	record.TotalHours = WorkedHours(*record.CheckIn, now)

	if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toRecordResponse(*record), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, req attendance.MyAttendanceRequest) (attendance.MyAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	now := s.clock.Now()
	anchor := now
	if req.Month != "" {
		month, _ := validator.IsValidMonth(req.Month)
		anchor = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	rangeStart := workcalendar.StartOfMonth(anchor)
	rangeEnd := workcalendar.EndOfMonth(anchor)

	records, err := s.AttendanceRepository.ListByEmployeeBetween(ctx, employeeID, rangeStart, rangeEnd)
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	virtual := SynthesizeAbsences(employeeID, rangeStart, rangeEnd, now, records, s.settings)
	merged := make([]attendance.Record, 0, len(records)+len(virtual))
	merged = append(merged, records...)
	merged = append(merged, virtual...)
	sort.Slice(merged, func(i, j int) bool {
		return workcalendar.DayKey(merged[i].Date) > workcalendar.DayKey(merged[j].Date)
	})

	summary := SummarizeUser(records, rangeStart, rangeEnd, now, s.settings)

	responses := make([]attendance.RecordResponse, 0, len(merged))
	for _, rec := range merged {
		responses = append(responses, toRecordResponse(rec))
	}

	return attendance.MyAttendanceResponse{
		Month:   rangeStart.Format("2006-01"),
		Records: responses,
		Summary: attendance.UserSummaryResponse{
			Counts:     toCountsResponse(summary.Counts),
			TotalHours: summary.TotalHours,
		},
	}, nil
}

// GetTeamSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTeamSummary(ctx context.Context, req attendance.TeamSummaryRequest) (attendance.TeamSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TeamSummaryResponse{}, err
	}

	now := s.clock.Now()
	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	rangeStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	rangeEnd := workcalendar.EndOfDay(time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, now.Location()))

	members, err := s.EmployeeRepository.ListByDepartment(ctx, req.Department)
	if err != nil {
		return attendance.TeamSummaryResponse{}, fmt.Errorf("failed to list department members: %w", err)
	}

	response := attendance.TeamSummaryResponse{
		Department:  req.Department,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MemberCount: len(members),
	}

	if len(members) == 0 {
		response.Counts = map[string]int{}
		return response, nil
	}

	memberIDs := make([]string, 0, len(members))
	for _, member := range members {
		memberIDs = append(memberIDs, member.ID)
	}

	records, err := s.AttendanceRepository.ListByEmployeesBetween(ctx, memberIDs, rangeStart, rangeEnd)
	if err != nil {
		return attendance.TeamSummaryResponse{}, fmt.Errorf("failed to list team attendance records: %w", err)
	}

	summary := SummarizeTeam(records, len(members), rangeStart, rangeEnd, now, s.settings)
	response.Counts = toCountsResponse(summary.Counts)

	return response, nil
}
