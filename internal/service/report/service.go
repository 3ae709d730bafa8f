package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	attendanceDomain "github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/attendance"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/employee"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/report"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/clock"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/validator"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/pkg/workcalendar"
	attendanceService "github.com/Varunmathiazhagan/tap-academy-sub000/internal/service/attendance"
)

type ReportServiceImpl struct {
	attendanceRepo attendanceDomain.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
	settings       attendanceDomain.Settings
}

func NewReportService(
	attendanceRepo attendanceDomain.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	settings attendanceDomain.Settings,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
		settings:       settings,
	}
}

// BuildAttendanceExport implements report.ReportService.
func (s *ReportServiceImpl) BuildAttendanceExport(ctx context.Context, req report.AttendanceExportRequest) ([]report.AttendanceExportRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	rangeStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	rangeEnd := workcalendar.EndOfDay(time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, now.Location()))

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(employees) == 0 {
		return []report.AttendanceExportRow{}, nil
	}

	employeeIDs := make([]string, 0, len(employees))
	byID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
		byID[emp.ID] = emp
	}

	records, err := s.attendanceRepo.ListByEmployeesBetween(ctx, employeeIDs, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	perEmployee := make(map[string][]attendanceDomain.Record, len(employees))
	for _, rec := range records {
		perEmployee[rec.EmployeeID] = append(perEmployee[rec.EmployeeID], rec)
	}

	rows := make([]report.AttendanceExportRow, 0, len(records))
	for _, emp := range employees {
		own := perEmployee[emp.ID]
		virtual := attendanceService.SynthesizeAbsences(emp.ID, rangeStart, rangeEnd, now, own, s.settings)
		for _, rec := range append(own, virtual...) {
			rows = append(rows, toExportRow(emp, rec))
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].EmployeeName < rows[j].EmployeeName
	})

	return rows, nil
}

func toExportRow(emp employee.Employee, rec attendanceDomain.Record) report.AttendanceExportRow {
	row := report.AttendanceExportRow{
		EmployeeName: emp.Name,
		Email:        emp.Email,
		Department:   emp.Department,
		Date:         workcalendar.DayKey(rec.Date),
		Status:       string(rec.Status),
		TotalHours:   rec.TotalHours,
	}
	if rec.CheckIn != nil {
		row.CheckInTime = rec.CheckIn.Format("2006-01-02 15:04:05")
	}
	if rec.CheckOut != nil {
		row.CheckOutTime = rec.CheckOut.Format("2006-01-02 15:04:05")
	}
	return row
}
