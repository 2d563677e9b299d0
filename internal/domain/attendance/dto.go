package attendance

import (
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Timestamp  *string `json:"timestamp,omitempty"` // RFC3339; defaults to server time
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Timestamp != nil && *r.Timestamp != "" {
		if _, valid := validator.IsValidDateTime(*r.Timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RequestedTime returns the caller-supplied timestamp, or fallback when none
// was given. Validate has already checked the format.
func (r *CheckInRequest) RequestedTime(fallback time.Time) time.Time {
	if r.Timestamp == nil || *r.Timestamp == "" {
		return fallback
	}
	t, ok := validator.IsValidDateTime(*r.Timestamp)
	if !ok {
		return fallback
	}
	return t.UTC()
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Timestamp  *string `json:"timestamp,omitempty"` // RFC3339; defaults to server time
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Timestamp != nil && *r.Timestamp != "" {
		if _, valid := validator.IsValidDateTime(*r.Timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CheckOutRequest) RequestedTime(fallback time.Time) time.Time {
	if r.Timestamp == nil || *r.Timestamp == "" {
		return fallback
	}
	t, ok := validator.IsValidDateTime(*r.Timestamp)
	if !ok {
		return fallback
	}
	return t.UTC()
}

type CheckInResponse struct {
	RecordID    string `json:"record_id"`
	EmployeeID  string `json:"employee_id"`
	WorkDate    string `json:"work_date"`
	CheckInTime string `json:"check_in_time"`
	Status      string `json:"status"`
}

type CheckOutResponse struct {
	RecordID     string  `json:"record_id"`
	EmployeeID   string  `json:"employee_id"`
	WorkDate     string  `json:"work_date"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime string  `json:"check_out_time"`
	TotalHours   float64 `json:"total_hours"`
	Status       string  `json:"status"`
}

type RecordResponse struct {
	RecordID     string   `json:"record_id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	WorkDate     string   `json:"work_date"`
	CheckInTime  string   `json:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
	Status       string   `json:"status"`
}

type ListRecentRequest struct {
	Limit int `json:"limit"`
}

func (r *ListRecentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if r.Limit == 0 {
		r.Limit = 10 // Default limit
	}
	if r.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRecentResponse struct {
	TotalCount int              `json:"total_count"`
	Records    []RecordResponse `json:"records"`
}
