package stats

import (
	"context"
)

// StatsService defines worked-hours aggregation for the authenticated employee
type StatsService interface {
	// GetMyStats aggregates hours over the requested period window
	GetMyStats(ctx context.Context, req StatsRequest) (StatsResponse, error)
}
