package report

import (
	"context"
)

// ReportService builds stateless reporting views over the attendance store
type ReportService interface {
	// ExportAttendanceCSV collects the authenticated employee's records in
	// the requested date range as CSV rows
	ExportAttendanceCSV(ctx context.Context, req ExportRequest) (AttendanceExport, error)
}
