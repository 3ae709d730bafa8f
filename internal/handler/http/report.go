package http

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/domain/report"
	"github.com/Varunmathiazhagan/tap-academy-sub000/internal/handler/http/response"
)

type ReportHandler interface {
	ExportAttendanceCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportAttendanceCSV implements ReportHandler.
func (h *reportHandlerImpl) ExportAttendanceCSV(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := report.AttendanceExportRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	rows, err := h.reportService.BuildAttendanceExport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "attendance_" + req.StartDate + "_" + req.EndDate + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"employee_name", "email", "department", "date", "check_in_time", "check_out_time", "status", "total_hours"})
	for _, row := range rows {
		_ = writer.Write([]string{
			row.EmployeeName,
			row.Email,
			row.Department,
			row.Date,
			row.CheckInTime,
			row.CheckOutTime,
			row.Status,
			strconv.FormatFloat(row.TotalHours, 'f', 2, 64),
		})
	}
	writer.Flush()
}
