package attendance

import (
	"time"
)

// Attendance is one employee-day attendance record. A record with a nil
// CheckOut is open; setting CheckOut closes it for good.
type Attendance struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
	TotalHours *float64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined from employees on listing queries
	EmployeeName *string
}

// IsOpen reports whether the record has not been checked out yet.
func (a Attendance) IsOpen() bool {
	return a.CheckOut == nil
}
