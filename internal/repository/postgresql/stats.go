package postgresql

import (
	"context"
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/stats"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
)

type statsRepository struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepository{db: db}
}

// AggregateHours implements stats.StatsRepository.
func (s *statsRepository) AggregateHours(ctx context.Context, employeeID string, start, end time.Time) (stats.HoursSummary, error) {
	q := GetQuerier(ctx, s.db)

	// Only closed records carry total_hours; open ones drop out of every sum.
	query := `
		SELECT
			COALESCE(SUM(total_hours), 0) as total_hours,
			COALESCE(SUM(CASE WHEN status = 'overtime' THEN total_hours - 8 ELSE 0 END), 0) as overtime_hours,
			COALESCE(SUM(CASE WHEN status IN ('present', 'overtime') THEN 1 ELSE 0 END), 0) as days_present,
			COALESCE(SUM(CASE WHEN status = 'overtime' THEN 1 ELSE 0 END), 0) as days_overtime
		FROM attendance_records
		WHERE employee_id = $1
		  AND work_date >= $2
		  AND work_date < $3
		  AND check_out_time IS NOT NULL
	`

	var summary stats.HoursSummary
	err := q.QueryRow(ctx, query, employeeID, start, end).Scan(
		&summary.TotalHours,
		&summary.OvertimeHours,
		&summary.DaysPresent,
		&summary.DaysOvertime,
	)
	if err != nil {
		return stats.HoursSummary{}, storeErr("failed to aggregate hours", err)
	}

	return summary, nil
}
