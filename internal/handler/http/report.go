package http

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/report"
	"github.com/worklog-hq/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

var exportHeader = []string{"employee_name", "work_date", "check_in_time", "check_out_time", "total_hours", "status"}

// ExportAttendance implements ReportHandler.
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	req := report.ExportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.ExportAttendanceCSV(r.Context(), req)
	if err != nil {
		slog.Error("ExportAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		slog.Error("ExportAttendance write error", "error", err)
		return
	}
	for _, row := range export.Rows {
		record := []string{
			row.EmployeeName,
			row.WorkDate,
			row.CheckInTime,
			row.CheckOutTime,
			row.TotalHours,
			row.Status,
		}
		if err := writer.Write(record); err != nil {
			slog.Error("ExportAttendance write error", "error", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		slog.Error("ExportAttendance flush error", "error", err)
	}
}
