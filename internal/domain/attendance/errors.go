package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")

	// Check-out errors
	ErrNoOpenCheckIn         = errors.New("you have not checked in yet")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time is before check-in time")

	// General errors
	ErrUnauthorized     = errors.New("employee id does not match the authenticated identity")
	ErrStoreUnavailable = errors.New("attendance store is unavailable")
)
