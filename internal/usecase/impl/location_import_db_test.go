package impl

import (
	"context"
	"testing"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/infra/persistence/postgres"
	"autobid/internal/infra/persistence/sqlitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_ImportLocations_Idempotent(t *testing.T) {
	db := sqlitetest.Open(t)
	srv := NewLocationService(LocationServiceParams{
		LocationRepo: postgres.NewLocationRepository(db),
		Publisher:    newPublisher(t),
		Metrics:      newMetrics(t),
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	rows := []entity.LocationRow{
		{Region: "NCR", Province: "Metro Manila", City: "Makati", Barangay: "Poblacion"},
		{Region: "NCR", Province: "Metro Manila", City: "Makati", Barangay: "Bel-Air"},
		{Region: "ncr", Province: "METRO MANILA", City: "makati", Barangay: "POBLACION"},
	}

	summary, err := srv.ImportLocations(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.SuccessCount)
	assert.Empty(t, summary.Errors)

	summary, err = srv.ImportLocations(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.SuccessCount)

	counts, err := srv.CountLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.LocationCounts{Regions: 1, Provinces: 1, Cities: 1, Barangays: 2}, counts)
}

func TestLocationService_DeleteLocation_RestrictedByChildren(t *testing.T) {
	db := sqlitetest.Open(t)
	srv := NewLocationService(LocationServiceParams{
		LocationRepo: postgres.NewLocationRepository(db),
		Publisher:    newPublisher(t),
		Metrics:      newMetrics(t),
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	_, err := srv.ImportLocations(ctx, []entity.LocationRow{
		{Region: "Region VII", Province: "Cebu", City: "Cebu City", Barangay: "Lahug"},
	})
	require.NoError(t, err)

	regions, err := srv.ListLocations(ctx, entity.LevelRegion, nil, false)
	require.NoError(t, err)
	require.Len(t, regions, 1)

	err = srv.DeleteLocation(ctx, entity.LevelRegion, regions[0].ID)
	assert.ErrorIs(t, err, domainerrors.ErrLocationInUse)

	provinces, err := srv.ListLocations(ctx, entity.LevelProvince, &regions[0].ID, false)
	require.NoError(t, err)
	require.Len(t, provinces, 1)
	assert.Equal(t, "Cebu", provinces[0].Name)
}
