package impl

import (
	"context"
	"log/slog"
	"time"

	"autobid/internal/domain/entity"
	"autobid/internal/domain/repository"
	"autobid/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	statsRepo repository.StatsRepository
	now       func() time.Time
	logger    *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Logger    *slog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		statsRepo: params.StatsRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// GetStats counts today's submissions from local midnight.
func (srv *dashboardService) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	stats, err := srv.statsRepo.DashboardStats(ctx, startOfDay(srv.now()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dashboard stats")
	}

	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
