package stats

import (
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/validator"
)

// Period selects the aggregation window for worked-hours stats.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

type StatsRequest struct {
	Period string `json:"period"`
}

func (r *StatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Period == "" {
		r.Period = string(PeriodDay) // Default period
	}
	if !validator.IsInSlice(r.Period, []string{string(PeriodDay), string(PeriodWeek), string(PeriodMonth)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of: day, week, month",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StatsResponse struct {
	EmployeeID    string  `json:"employee_id"`
	Period        string  `json:"period"`
	PeriodStart   string  `json:"period_start"`
	PeriodEnd     string  `json:"period_end"`
	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	DaysPresent   int     `json:"days_present"`
	DaysOvertime  int     `json:"days_overtime"`
}
