package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/employee"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

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

// ExportAttendanceCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, req report.ExportRequest) (report.AttendanceExport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceExport{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return report.AttendanceExport{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.AttendanceExport{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	start, end := req.Range()

	records, err := s.attendanceRepo.ListRange(ctx, employeeID, start, end)
	if err != nil {
		return report.AttendanceExport{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	rows := make([]report.ExportRow, 0, len(records))
	for _, rec := range records {
		row := report.ExportRow{
			EmployeeName: emp.FullName,
			WorkDate:     rec.WorkDate.Format("2006-01-02"),
			CheckInTime:  rec.CheckIn.UTC().Format(time.RFC3339),
			Status:       string(rec.Status),
		}
		// Open records export with blank checkout columns and no status.
		if rec.CheckOut == nil {
			row.Status = ""
		} else {
			row.CheckOutTime = rec.CheckOut.UTC().Format(time.RFC3339)
		}
		if rec.TotalHours != nil {
			row.TotalHours = strconv.FormatFloat(*rec.TotalHours, 'f', 2, 64)
		}
		rows = append(rows, row)
	}

	generatedAt := s.now().UTC()

	return report.AttendanceExport{
		Filename:    fmt.Sprintf("attendance_%s_%s.csv", req.StartDate, req.EndDate),
		GeneratedAt: generatedAt.Format(time.RFC3339),
		Rows:        rows,
	}, nil
}
