package usecase

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// LifecycleResult reports how many rows a soft or hard delete touched
type LifecycleResult struct {
	Affected int64 `json:"affected"`
}

// ModerateListingInput represents a moderation verdict
type ModerateListingInput struct {
	Action entity.ModerationAction `json:"action" validate:"required,oneof=approve reject"`
	Reason *string                 `json:"reason,omitempty" validate:"omitempty,max=1000"`
	Notes  *string                 `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// ListingUsecase defines the interface for listing moderation and lifecycle
type ListingUsecase interface {
	ListListings(ctx context.Context, filter *entity.AuctionFilter) ([]*entity.Auction, int64, error)
	GetListing(ctx context.Context, id uuid.UUID) (*entity.Auction, error)
	ListStatuses(ctx context.Context) ([]*entity.AuctionStatus, error)
	ListBids(ctx context.Context, auctionID uuid.UUID, limit int) ([]*entity.Bid, error)

	// DeleteListings soft-deletes (status cancelled) or hard-deletes listings over a scope.
	DeleteListings(ctx context.Context, req entity.DeleteRequest) (*LifecycleResult, error)

	// ModerateListing approves or rejects a listing awaiting approval and records the verdict.
	ModerateListing(ctx context.Context, moderatorID, listingID uuid.UUID, input *ModerateListingInput) error

	SetListingActive(ctx context.Context, id uuid.UUID, active bool) error
}
