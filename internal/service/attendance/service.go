package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
	now            func() time.Time
}

// NewAttendanceService builds the attendance lifecycle service. loc is the
// timezone that decides which calendar day a check-in belongs to.
func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// employeeIDFromContext extracts the authenticated employee_id from JWT claims
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

// timeToString formats a timestamp the way responses expose clock times.
func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := timeToString(*t)
	return &formatted
}

// workDateOf truncates an instant to the calendar day it falls on in the
// configured app timezone. The employee-day key always comes from the server
// clock, never from a caller-supplied timestamp.
func (a *AttendanceServiceImpl) workDateOf(t time.Time) time.Time {
	local := t.In(a.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	// Identity check happens before any store access
	if req.EmployeeID != employeeID {
		return attendance.CheckInResponse{}, attendance.ErrUnauthorized
	}

	nowUTC := a.now().UTC()
	workDate := a.workDateOf(nowUTC)
	checkIn := req.RequestedTime(nowUTC)

	open, err := a.attendanceRepo.FindOpenRecord(ctx, employeeID, workDate)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to look up open record: %w", err)
	}
	if open != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	record := attendance.Attendance{
		EmployeeID: employeeID,
		WorkDate:   workDate,
		CheckIn:    checkIn,

		// Placeholder until checkout classifies the real status
		Status: attendance.StatusPresent,
	}

	created, err := a.attendanceRepo.Insert(ctx, record)
	if err != nil {
		// A concurrent check-in may have won the race between the lookup
		// and the insert; the store's unique constraint reports it.
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.CheckInResponse{
		RecordID:    created.ID,
		EmployeeID:  created.EmployeeID,
		WorkDate:    created.WorkDate.Format("2006-01-02"),
		CheckInTime: timeToString(created.CheckIn),
		Status:      string(created.Status),
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	if req.EmployeeID != employeeID {
		return attendance.CheckOutResponse{}, attendance.ErrUnauthorized
	}

	nowUTC := a.now().UTC()

	// Lookup ignores the work date: a checkout just past midnight belongs
	// to the session opened the previous day.
	open, err := a.attendanceRepo.FindLatestOpenRecord(ctx, employeeID)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to look up open record: %w", err)
	}
	if open == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNoOpenCheckIn
	}

	checkOut := req.RequestedTime(nowUTC)
	if checkOut.Before(open.CheckIn) {
		return attendance.CheckOutResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	// Direct timestamp subtraction: a checkout past midnight still yields a
	// positive duration. Rounded once here; the same value is classified,
	// persisted and returned.
	totalHours := attendance.RoundHours(checkOut.Sub(open.CheckIn).Hours())
	status := attendance.ClassifyStatus(totalHours)

	updated, err := a.attendanceRepo.UpdateCheckout(ctx, open.ID, checkOut, totalHours, status)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}
	if !updated {
		// Lost a checkout race: the record is already terminal.
		return attendance.CheckOutResponse{}, attendance.ErrNoOpenCheckIn
	}

	return attendance.CheckOutResponse{
		RecordID:     open.ID,
		EmployeeID:   open.EmployeeID,
		WorkDate:     open.WorkDate.Format("2006-01-02"),
		CheckInTime:  timeToString(open.CheckIn),
		CheckOutTime: timeToString(checkOut),
		TotalHours:   totalHours,
		Status:       string(status),
	}, nil
}

// ListRecent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecent(ctx context.Context, req attendance.ListRecentRequest) (attendance.ListRecentResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ListRecentResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListRecentResponse{}, err
	}

	records, err := a.attendanceRepo.ListRecent(ctx, employeeID, req.Limit)
	if err != nil {
		return attendance.ListRecentResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return attendance.ListRecentResponse{
		TotalCount: len(responses),
		Records:    responses,
	}, nil
}

// mapRecordToResponse converts an Attendance entity to RecordResponse
func mapRecordToResponse(rec attendance.Attendance) attendance.RecordResponse {
	return attendance.RecordResponse{
		RecordID:     rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		WorkDate:     rec.WorkDate.Format("2006-01-02"),
		CheckInTime:  timeToString(rec.CheckIn),
		CheckOutTime: timePtrToString(rec.CheckOut),
		TotalHours:   rec.TotalHours,
		Status:       string(rec.Status),
	}
}
