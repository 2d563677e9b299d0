package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// workDate parameters carry only the calendar-day component of the
// employee-day key; repositories compare them against the stored work_date.
type AttendanceRepository interface {
	// FindOpenRecord retrieves the open record for an employee on a work
	// day, or nil when the employee has no open record that day.
	FindOpenRecord(ctx context.Context, employeeID string, workDate time.Time) (*Attendance, error)

	// FindLatestOpenRecord retrieves the employee's open record with the
	// latest check-in, regardless of work day. Checkouts past midnight
	// still find the record opened the previous day.
	FindLatestOpenRecord(ctx context.Context, employeeID string) (*Attendance, error)

	// Insert creates a new open record and returns it with its assigned ID.
	// A concurrent insert for the same employee-day returns
	// ErrAlreadyCheckedIn (backed by the store's unique constraint).
	Insert(ctx context.Context, record Attendance) (Attendance, error)

	// UpdateCheckout closes an open record. Returns false without error
	// when the record was already closed (or gone), so callers can report
	// the race as a no-open-check-in condition.
	UpdateCheckout(ctx context.Context, recordID string, checkOut time.Time, totalHours float64, status Status) (bool, error)

	// ListRecent retrieves the most recent records for an employee,
	// newest check-in first.
	ListRecent(ctx context.Context, employeeID string, limit int) ([]Attendance, error)

	// ListRange retrieves an employee's records with work_date in
	// [start, end], oldest first. Used by the CSV export.
	ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}
