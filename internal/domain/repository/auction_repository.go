package repository

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// AuctionRepository defines the database operations on listings and their satellites.
type AuctionRepository interface {
	// List returns one page of listings with status, vehicle, primary photo and seller, plus the total count.
	List(ctx context.Context, filter *entity.AuctionFilter) ([]*entity.Auction, int64, error)

	// FindByID returns a listing with all photos and its bid count.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Auction, error)

	// FindStatusByName resolves a status lookup row. It returns errors.ErrAuctionStatusNotFound on a miss.
	FindStatusByName(ctx context.Context, name entity.AuctionStatusName) (*entity.AuctionStatus, error)

	// ListStatuses returns every status lookup row.
	ListStatuses(ctx context.Context) ([]*entity.AuctionStatus, error)

	// UpdateStatus moves the given listings to statusID.
	UpdateStatus(ctx context.Context, ids []uuid.UUID, statusID uuid.UUID) (int64, error)

	// UpdateStatusAll moves every listing not already in statusID to it.
	UpdateStatusAll(ctx context.Context, statusID uuid.UUID) (int64, error)

	// TransitionStatus moves a listing from fromStatusID to toStatusID and reports whether a row matched.
	TransitionStatus(ctx context.Context, id, fromStatusID, toStatusID uuid.UUID) (bool, error)

	// DeleteByIDs hard-deletes the given listings. Dependent rows go with them via foreign key cascades.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	// DeleteAll hard-deletes every listing.
	DeleteAll(ctx context.Context) (int64, error)

	// SetActive flips the is_active flag of a listing.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// CreateModeration appends a moderation audit row.
	CreateModeration(ctx context.Context, moderation *entity.AuctionModeration) error

	// ListBids returns the newest bids of a listing first.
	ListBids(ctx context.Context, auctionID uuid.UUID, limit int) ([]*entity.Bid, error)
}
