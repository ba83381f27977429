// Package sqlitetest opens throwaway in-memory databases carrying the back-office schema.
package sqlitetest

import (
	"fmt"
	"testing"

	"autobid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// indexes mirror the expression indexes of the SQL migrations that AutoMigrate cannot express.
var indexes = []string{
	"CREATE UNIQUE INDEX uq_regions_name ON regions (LOWER(name))",
	"CREATE UNIQUE INDEX uq_provinces_region_name ON provinces (region_id, LOWER(name))",
	"CREATE UNIQUE INDEX uq_cities_province_name ON cities (province_id, LOWER(name))",
	"CREATE UNIQUE INDEX uq_barangays_city_name ON barangays (city_id, LOWER(name))",
}

// Lookups holds the seeded lookup rows by name.
type Lookups struct {
	AuctionStatuses map[string]uuid.UUID
	KycStatuses     map[string]uuid.UUID
	UserRoles       map[string]uuid.UUID
	AdminRoles      map[string]uuid.UUID
}

// Open returns a fresh database with every table created and foreign keys enforced.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	for _, stmt := range indexes {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

// OpenSeeded is Open plus the lookup rows inserted by the SQL migrations.
func OpenSeeded(t *testing.T) (*gorm.DB, *Lookups) {
	t.Helper()

	db := Open(t)
	lookups := &Lookups{
		AuctionStatuses: map[string]uuid.UUID{},
		KycStatuses:     map[string]uuid.UUID{},
		UserRoles:       map[string]uuid.UUID{},
		AdminRoles:      map[string]uuid.UUID{},
	}

	for _, name := range []string{"draft", "pending_approval", "scheduled", "live", "ended", "cancelled", "sold", "unsold"} {
		row := &model.AuctionStatusModel{StatusName: name, DisplayName: name}
		require.NoError(t, db.Create(row).Error)
		lookups.AuctionStatuses[name] = row.ID
	}
	for _, name := range []string{"pending", "under_review", "approved", "rejected", "expired"} {
		row := &model.KycStatusModel{StatusName: name, DisplayName: name}
		require.NoError(t, db.Create(row).Error)
		lookups.KycStatuses[name] = row.ID
	}
	for _, name := range []string{"buyer", "seller", "both"} {
		row := &model.UserRoleModel{RoleName: name, DisplayName: name}
		require.NoError(t, db.Create(row).Error)
		lookups.UserRoles[name] = row.ID
	}
	for _, name := range []string{"super_admin", "moderator"} {
		row := &model.AdminRoleModel{RoleName: name, DisplayName: name}
		require.NoError(t, db.Create(row).Error)
		lookups.AdminRoles[name] = row.ID
	}

	return db, lookups
}

// CreateUser inserts an active user with the given email.
func CreateUser(t *testing.T, db *gorm.DB, email string) *model.UserModel {
	t.Helper()

	user := &model.UserModel{
		Email:       email,
		FullName:    email,
		DisplayName: email,
		FirstName:   "Test",
		LastName:    "User",
		IsActive:    true,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

// CreateAuction inserts a listing owned by sellerID in statusID.
func CreateAuction(t *testing.T, db *gorm.DB, sellerID, statusID uuid.UUID, title string) *model.AuctionModel {
	t.Helper()

	auction := &model.AuctionModel{
		SellerID:      sellerID,
		StatusID:      statusID,
		Title:         title,
		StartingPrice: 100000,
		CurrentPrice:  100000,
		BidIncrement:  1000,
		IsActive:      true,
	}
	require.NoError(t, db.Create(auction).Error)

	return auction
}

// Count returns the number of rows in table.
func Count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)

	return n
}
