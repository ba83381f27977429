package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"autobid/internal/domain/entity"
	mockRepo "autobid/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetStats(t *testing.T) {
	ctx := context.Background()
	manila := time.FixedZone("PHT", 8*60*60)
	statsRepo := mockRepo.NewMockStatsRepository(t)
	srv := &dashboardService{
		statsRepo: statsRepo,
		now:       func() time.Time { return time.Date(2024, 3, 9, 17, 45, 12, 0, manila) },
		logger:    newDiscardLogger(),
	}

	want := &entity.DashboardStats{TotalUsers: 12, PendingListings: 3, TodaySubmissions: 2, TotalRevenue: 1250000}
	statsRepo.EXPECT().DashboardStats(ctx, time.Date(2024, 3, 9, 0, 0, 0, 0, manila)).Return(want, nil)

	stats, err := srv.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, stats)
}

func TestDashboardService_GetStats_Error(t *testing.T) {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	srv := NewDashboardService(DashboardServiceParams{StatsRepo: statsRepo, Logger: newDiscardLogger()})

	statsRepo.EXPECT().DashboardStats(mock.Anything, mock.AnythingOfType("time.Time")).Return(nil, errors.New("connection reset"))

	_, err := srv.GetStats(context.Background())
	assert.ErrorContains(t, err, "failed to get dashboard stats")
}
