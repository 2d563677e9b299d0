package stats

import (
	"context"
	"time"
)

// HoursSummary is the raw aggregate the store returns for a date window.
type HoursSummary struct {
	TotalHours    float64
	OvertimeHours float64
	DaysPresent   int
	DaysOvertime  int
}

// StatsRepository aggregates closed attendance records.
type StatsRepository interface {
	// AggregateHours sums total_hours over records with work_date in
	// [start, end). OvertimeHours is SUM(total_hours - 8) over records
	// classified overtime.
	AggregateHours(ctx context.Context, employeeID string, start, end time.Time) (HoursSummary, error)
}
