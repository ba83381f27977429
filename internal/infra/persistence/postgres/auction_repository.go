package postgres

import (
	"context"
	"strings"
	"time"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	"autobid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultPageSize = 50

// auctionRepository implements the repository.AuctionRepository interface.
type auctionRepository struct {
	db *gorm.DB
}

// NewAuctionRepository is the constructor for auctionRepository.
func NewAuctionRepository(db *gorm.DB) repository.AuctionRepository {
	return &auctionRepository{
		db: db,
	}
}

// List returns one page of listings with status, vehicle, primary photo and seller.
func (repo *auctionRepository) List(ctx context.Context, filter *entity.AuctionFilter) ([]*entity.Auction, int64, error) {
	if filter == nil {
		filter = &entity.AuctionFilter{}
	}

	query := repo.db.WithContext(ctx).Model(&model.AuctionModel{})
	if filter.StatusName != "" {
		query = query.Where("status_id IN (?)",
			repo.db.Model(&model.AuctionStatusModel{}).Select("id").Where("status_name = ?", filter.StatusName))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count auctions")
	}

	var auctionModels []*model.AuctionModel
	if err := query.Session(&gorm.Session{}).
		Preload("Status").
		Preload("Category").
		Preload("Seller").
		Order("created_at DESC").
		Limit(pageSize(filter.Limit)).
		Offset(filter.Offset).
		Find(&auctionModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list auctions")
	}

	ids := make([]uuid.UUID, 0, len(auctionModels))
	for _, auctionM := range auctionModels {
		ids = append(ids, auctionM.ID)
	}

	vehicles, err := repo.vehiclesByAuction(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	var photoModels []*model.AuctionPhotoModel
	if len(ids) > 0 {
		if err := repo.db.WithContext(ctx).
			Where("auction_id IN ? AND is_primary = ?", ids, true).
			Find(&photoModels).Error; err != nil {
			return nil, 0, errors.Wrap(err, "failed to load primary photos")
		}
	}
	photos := make(map[uuid.UUID][]*model.AuctionPhotoModel, len(photoModels))
	for _, photoM := range photoModels {
		photos[photoM.AuctionID] = append(photos[photoM.AuctionID], photoM)
	}

	auctions := make([]*entity.Auction, 0, len(auctionModels))
	for _, auctionM := range auctionModels {
		auctions = append(auctions, toAuctionDomain(auctionM, vehicles[auctionM.ID], photos[auctionM.ID]))
	}

	return auctions, total, nil
}

// FindByID returns a listing with every photo.
func (repo *auctionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Auction, error) {
	var auctionM model.AuctionModel
	if err := repo.db.WithContext(ctx).
		Preload("Status").
		Preload("Category").
		Preload("Seller").
		Where("id = ?", id).
		First(&auctionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find auction by ID")
	}

	vehicles, err := repo.vehiclesByAuction(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	var photoModels []*model.AuctionPhotoModel
	if err := repo.db.WithContext(ctx).
		Where("auction_id = ?", id).
		Order("display_order ASC").
		Find(&photoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load auction photos")
	}

	return toAuctionDomain(&auctionM, vehicles[id], photoModels), nil
}

func (repo *auctionRepository) vehiclesByAuction(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.AuctionVehicleModel, error) {
	vehicles := make(map[uuid.UUID]*model.AuctionVehicleModel, len(ids))
	if len(ids) == 0 {
		return vehicles, nil
	}

	var vehicleModels []*model.AuctionVehicleModel
	if err := repo.db.WithContext(ctx).Where("auction_id IN ?", ids).Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load auction vehicles")
	}
	for _, vehicleM := range vehicleModels {
		vehicles[vehicleM.AuctionID] = vehicleM
	}

	return vehicles, nil
}

// FindStatusByName resolves a status lookup row.
func (repo *auctionRepository) FindStatusByName(ctx context.Context, name entity.AuctionStatusName) (*entity.AuctionStatus, error) {
	var statusM model.AuctionStatusModel
	if err := repo.db.WithContext(ctx).Where("status_name = ?", string(name)).First(&statusM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAuctionStatusNotFound
		}

		return nil, errors.Wrap(err, "failed to find auction status")
	}

	return toAuctionStatusDomain(&statusM), nil
}

// ListStatuses returns every status lookup row.
func (repo *auctionRepository) ListStatuses(ctx context.Context) ([]*entity.AuctionStatus, error) {
	var statusModels []*model.AuctionStatusModel
	if err := repo.db.WithContext(ctx).Order("status_name ASC").Find(&statusModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list auction statuses")
	}

	statuses := make([]*entity.AuctionStatus, 0, len(statusModels))
	for _, statusM := range statusModels {
		statuses = append(statuses, toAuctionStatusDomain(statusM))
	}

	return statuses, nil
}

// UpdateStatus moves the given listings to statusID.
func (repo *auctionRepository) UpdateStatus(ctx context.Context, ids []uuid.UUID, statusID uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AuctionModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{"status_id": statusID, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update auction status")
	}

	return result.RowsAffected, nil
}

// UpdateStatusAll moves every listing not already in statusID to it.
func (repo *auctionRepository) UpdateStatusAll(ctx context.Context, statusID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AuctionModel{}).
		Where("status_id <> ?", statusID).
		Updates(map[string]any{"status_id": statusID, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update auction status")
	}

	return result.RowsAffected, nil
}

// TransitionStatus moves a listing from fromStatusID to toStatusID.
func (repo *auctionRepository) TransitionStatus(ctx context.Context, id, fromStatusID, toStatusID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AuctionModel{}).
		Where("id = ? AND status_id = ?", id, fromStatusID).
		Updates(map[string]any{"status_id": toStatusID, "updated_at": time.Now()})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to transition auction status")
	}

	return result.RowsAffected > 0, nil
}

// DeleteByIDs hard-deletes the given listings.
func (repo *auctionRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.AuctionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete auctions")
	}

	return result.RowsAffected, nil
}

// DeleteAll hard-deletes every listing. The nil-uuid predicate matches every real row.
func (repo *auctionRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Where("id <> ?", uuid.Nil).Delete(&model.AuctionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete auctions")
	}

	return result.RowsAffected, nil
}

// SetActive flips the is_active flag of a listing.
func (repo *auctionRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuctionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update auction")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrListingNotFound
	}

	return nil
}

// CreateModeration appends a moderation audit row.
func (repo *auctionRepository) CreateModeration(ctx context.Context, moderation *entity.AuctionModeration) error {
	moderationM := &model.AuctionModerationModel{
		ID:          moderation.ID,
		AuctionID:   moderation.AuctionID,
		ModeratorID: moderation.ModeratorID,
		Action:      string(moderation.Action),
		Reason:      moderation.Reason,
		Notes:       moderation.Notes,
	}

	if err := repo.db.WithContext(ctx).Create(moderationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record moderation")
	}

	moderation.ID = moderationM.ID
	moderation.CreatedAt = moderationM.CreatedAt

	return nil
}

// ListBids returns the newest bids of a listing first.
func (repo *auctionRepository) ListBids(ctx context.Context, auctionID uuid.UUID, limit int) ([]*entity.Bid, error) {
	var bidModels []*model.BidModel
	if err := repo.db.WithContext(ctx).
		Preload("Bidder").
		Where("auction_id = ?", auctionID).
		Order("created_at DESC").
		Limit(pageSize(limit)).
		Find(&bidModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bids")
	}

	bids := make([]*entity.Bid, 0, len(bidModels))
	for _, bidM := range bidModels {
		bids = append(bids, &entity.Bid{
			ID:        bidM.ID,
			AuctionID: bidM.AuctionID,
			BidderID:  bidM.BidderID,
			Amount:    bidM.BidAmount,
			IsAutoBid: bidM.IsAutoBid,
			CreatedAt: bidM.CreatedAt,
			Bidder:    toUserSummary(bidM.Bidder),
		})
	}

	return bids, nil
}

func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}

	return limit
}

// --- Mapper Functions ---

func toAuctionStatusDomain(data *model.AuctionStatusModel) *entity.AuctionStatus {
	if data == nil {
		return nil
	}

	return &entity.AuctionStatus{
		ID:          data.ID,
		Name:        entity.AuctionStatusName(data.StatusName),
		DisplayName: data.DisplayName,
	}
}

func toAuctionDomain(data *model.AuctionModel, vehicle *model.AuctionVehicleModel, photos []*model.AuctionPhotoModel) *entity.Auction {
	if data == nil {
		return nil
	}

	auction := &entity.Auction{
		ID:            data.ID,
		SellerID:      data.SellerID,
		StatusID:      data.StatusID,
		CategoryID:    data.CategoryID,
		Title:         data.Title,
		Description:   data.Description,
		StartingPrice: data.StartingPrice,
		ReservePrice:  data.ReservePrice,
		CurrentPrice:  data.CurrentPrice,
		BidIncrement:  data.BidIncrement,
		TotalBids:     data.TotalBids,
		ViewCount:     data.ViewCount,
		IsFeatured:    data.IsFeatured,
		IsActive:      data.IsActive,
		StartTime:     data.StartTime,
		EndTime:       data.EndTime,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Status:        toAuctionStatusDomain(data.Status),
		Seller:        toUserSummary(data.Seller),
	}

	if data.Category != nil {
		auction.Category = &entity.AuctionCategory{
			ID:          data.Category.ID,
			Name:        data.Category.CategoryName,
			DisplayName: data.Category.DisplayName,
		}
	}

	if vehicle != nil {
		auction.Vehicle = &entity.AuctionVehicle{
			Brand:         vehicle.Brand,
			Model:         vehicle.Model,
			Variant:       vehicle.Variant,
			Year:          vehicle.Year,
			Mileage:       vehicle.Mileage,
			Condition:     vehicle.Condition,
			ExteriorColor: vehicle.ExteriorColor,
			Transmission:  vehicle.Transmission,
			FuelType:      vehicle.FuelType,
		}
	}

	for _, photo := range photos {
		auction.Photos = append(auction.Photos, entity.AuctionPhoto{
			ID:           photo.ID,
			PhotoURL:     photo.PhotoURL,
			Category:     photo.Category,
			DisplayOrder: photo.DisplayOrder,
			IsPrimary:    photo.IsPrimary,
		})
	}

	return auction
}

func toUserSummary(data *model.UserModel) *entity.UserSummary {
	if data == nil {
		return nil
	}

	return &entity.UserSummary{
		ID:       data.ID,
		FullName: data.FullName,
		Email:    data.Email,
	}
}
