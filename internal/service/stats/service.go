package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/stats"
)

type StatsServiceImpl struct {
	stats.StatsRepository
	loc *time.Location
	now func() time.Time
}

func NewStatsService(statsRepo stats.StatsRepository, loc *time.Location) stats.StatsService {
	return &StatsServiceImpl{
		StatsRepository: statsRepo,
		loc:             loc,
		now:             time.Now,
	}
}

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

// periodWindow computes the half-open [start, end) work-date window for a
// period, anchored on today in the app timezone. Weeks start on Monday.
func (s *StatsServiceImpl) periodWindow(period stats.Period) (time.Time, time.Time) {
	local := s.now().In(s.loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case stats.PeriodWeek:
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	case stats.PeriodMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	default:
		return today, today.AddDate(0, 0, 1)
	}
}

// GetMyStats implements stats.StatsService.
func (s *StatsServiceImpl) GetMyStats(ctx context.Context, req stats.StatsRequest) (stats.StatsResponse, error) {
	if err := req.Validate(); err != nil {
		return stats.StatsResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return stats.StatsResponse{}, err
	}

	start, end := s.periodWindow(stats.Period(req.Period))

	summary, err := s.StatsRepository.AggregateHours(ctx, employeeID, start, end)
	if err != nil {
		return stats.StatsResponse{}, fmt.Errorf("failed to aggregate hours: %w", err)
	}

	return stats.StatsResponse{
		EmployeeID:    employeeID,
		Period:        req.Period,
		PeriodStart:   start.Format("2006-01-02"),
		PeriodEnd:     end.AddDate(0, 0, -1).Format("2006-01-02"),
		TotalHours:    summary.TotalHours,
		OvertimeHours: summary.OvertimeHours,
		DaysPresent:   summary.DaysPresent,
		DaysOvertime:  summary.DaysOvertime,
	}, nil
}
