package repository

import (
	"context"
	"time"

	"autobid/internal/domain/entity"
)

// StatsRepository computes the dashboard counters.
type StatsRepository interface {
	// DashboardStats counts with submissions limited to auctions created at or after since.
	DashboardStats(ctx context.Context, since time.Time) (*entity.DashboardStats, error)
}
