package report

import "context"

// ReportService builds flat attendance exports for the CSV exporter.
type ReportService interface {
	// BuildAttendanceExport returns one row per employee-day in the range,
	// including synthesized absences, sorted by date then employee name.
	BuildAttendanceExport(ctx context.Context, req AttendanceExportRequest) ([]AttendanceExportRow, error)
}
