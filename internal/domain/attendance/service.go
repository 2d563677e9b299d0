package attendance

import (
	"context"
)

// AttendanceService defines business logic for the attendance lifecycle
type AttendanceService interface {
	// CheckIn opens a new attendance record for the authenticated employee
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes the employee's open record and classifies its status
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// ListRecent retrieves the authenticated employee's latest records
	ListRecent(ctx context.Context, req ListRecentRequest) (ListRecentResponse, error)
}
