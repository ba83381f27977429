//go:build integration

package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/infra/persistence/migration"
	"autobid/internal/infra/persistence/model"
	"autobid/internal/infra/persistence/postgres"
	"autobid/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openMigrated starts a disposable PostgreSQL and applies the embedded migrations.
func openMigrated(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("autobid"),
		tcpostgres.WithUsername("autobid"),
		tcpostgres.WithPassword("autobid"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	migrator, err := migration.New(sqlDB, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, migrator.Up(ctx))

	return db
}

func TestIntegration_LocationHierarchy(t *testing.T) {
	db := openMigrated(t)
	ctx := context.Background()
	repo := postgres.NewLocationRepository(db)

	region := &entity.LocationNode{Level: entity.LevelRegion, Name: "Central Visayas", IsActive: true}
	require.NoError(t, repo.Create(ctx, region))
	province := &entity.LocationNode{Level: entity.LevelProvince, ParentID: &region.ID, Name: "Cebu", IsActive: true}
	require.NoError(t, repo.Create(ctx, province))

	found, err := repo.FindByName(ctx, entity.LevelProvince, &region.ID, "CEBU")
	require.NoError(t, err)
	assert.Equal(t, province.ID, found.ID)

	err = repo.Create(ctx, &entity.LocationNode{Level: entity.LevelProvince, ParentID: &region.ID, Name: "cebu", IsActive: true})
	assert.ErrorIs(t, err, domainerrors.ErrLocationNameTaken)

	err = repo.Delete(ctx, entity.LevelRegion, region.ID)
	assert.ErrorIs(t, err, domainerrors.ErrLocationInUse)

	counts, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Regions)
	assert.Equal(t, int64(1), counts.Provinces)
}

func TestIntegration_ListingHardDeleteAll(t *testing.T) {
	db := openMigrated(t)
	ctx := context.Background()
	repo := postgres.NewAuctionRepository(db)

	live, err := repo.FindStatusByName(ctx, entity.AuctionLive)
	require.NoError(t, err)

	seller := sqlitetest.CreateUser(t, db, "seller@autobid.test")
	buyer := sqlitetest.CreateUser(t, db, "buyer@autobid.test")
	for _, title := range []string{"2018 Honda City", "2020 Mitsubishi Mirage"} {
		auction := sqlitetest.CreateAuction(t, db, seller.ID, live.ID, title)
		require.NoError(t, db.Create(&model.BidModel{AuctionID: auction.ID, BidderID: buyer.ID, BidAmount: 101000}).Error)
	}

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Zero(t, sqlitetest.Count(t, db, "auctions"))
	assert.Zero(t, sqlitetest.Count(t, db, "bids"), "bids cascade with their auction")

	deleted, err = repo.DeleteByIDs(ctx, []uuid.UUID{uuid.New()})
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
