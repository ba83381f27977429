package usecase

import (
	"context"

	"autobid/internal/domain/entity"
)

// DashboardUsecase defines the interface for the admin home screen counters
type DashboardUsecase interface {
	GetStats(ctx context.Context) (*entity.DashboardStats, error)
}
