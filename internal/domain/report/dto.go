package report

import (
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/pkg/validator"
)

type ExportRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD

	// Set by Validate
	start time.Time
	end   time.Time
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, valid := validator.IsValidDate(r.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, valid := validator.IsValidDate(r.EndDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) == 0 {
		start, _ := validator.IsValidDate(r.StartDate)
		end, _ := validator.IsValidDate(r.EndDate)
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		} else {
			r.start = start
			r.end = end
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Range returns the parsed date window. Only meaningful after Validate
// has succeeded.
func (r *ExportRequest) Range() (start, end time.Time) {
	return r.start, r.end
}

// ExportRow is one CSV line of the attendance export.
type ExportRow struct {
	EmployeeName string
	WorkDate     string
	CheckInTime  string
	CheckOutTime string
	TotalHours   string
	Status       string
}

type AttendanceExport struct {
	Filename    string
	GeneratedAt string
	Rows        []ExportRow
}
