package postgres

import (
	"context"
	"time"

	"autobid/internal/domain/entity"
	"autobid/internal/domain/repository"
	"autobid/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statsRepository implements the repository.StatsRepository interface.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// DashboardStats runs one count query per counter. Only row counts are read.
func (repo *statsRepository) DashboardStats(ctx context.Context, since time.Time) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{}
	db := repo.db.WithContext(ctx)

	auctionStatus := func(names ...entity.AuctionStatusName) *gorm.DB {
		values := make([]string, 0, len(names))
		for _, name := range names {
			values = append(values, string(name))
		}

		return db.Model(&model.AuctionStatusModel{}).Select("id").Where("status_name IN ?", values)
	}

	kycStatuses := make([]string, 0, len(entity.ReviewableKycStatuses))
	for _, status := range entity.ReviewableKycStatuses {
		kycStatuses = append(kycStatuses, string(status))
	}

	counters := []struct {
		name  string
		query *gorm.DB
		dest  *int64
	}{
		{"users", db.Model(&model.UserModel{}), &stats.TotalUsers},
		{"pending listings", db.Model(&model.AuctionModel{}).Where("status_id IN (?)", auctionStatus(entity.AuctionPendingApproval)), &stats.PendingListings},
		{"active auctions", db.Model(&model.AuctionModel{}).Where("status_id IN (?)", auctionStatus(entity.AuctionLive)), &stats.ActiveAuctions},
		{"listings", db.Model(&model.AuctionModel{}), &stats.TotalListings},
		{"pending kyc", db.Model(&model.KycDocumentModel{}).Where("status_id IN (?)",
			db.Model(&model.KycStatusModel{}).Select("id").Where("status_name IN ?", kycStatuses)), &stats.PendingKyc},
		{"pending transactions", db.Model(&model.AuctionTransactionModel{}).Scopes(pendingReview), &stats.PendingTransactions},
		{"today submissions", db.Model(&model.AuctionModel{}).Where("created_at >= ?", since), &stats.TodaySubmissions},
	}

	for _, counter := range counters {
		if err := counter.query.Count(counter.dest).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to count %s", counter.name)
		}
	}

	var revenue struct{ Total float64 }
	if err := db.Model(&model.AuctionTransactionModel{}).
		Select("COALESCE(SUM(agreed_price), 0) AS total").
		Where("status = ?", string(entity.TransactionSold)).
		Scan(&revenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}
	stats.TotalRevenue = revenue.Total

	return stats, nil
}
