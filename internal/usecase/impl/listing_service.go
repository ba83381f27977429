package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "autobid/internal/delivery/context"
	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	"autobid/internal/domain/service"
	"autobid/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultBidLimit = 50
	maxBidLimit     = 500
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	txManager   repository.TransactionManager
	auctionRepo repository.AuctionRepository
	metrics     service.MetricsRecorder
	invalidator *invalidator
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AuctionRepo repository.AuctionRepository
	Publisher   service.EventPublisher
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewListingService creates a new listing service.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		txManager:   params.TxManager,
		auctionRepo: params.AuctionRepo,
		metrics:     params.Metrics,
		invalidator: &invalidator{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListListings returns one page of listings.
func (srv *listingService) ListListings(ctx context.Context, filter *entity.AuctionFilter) ([]*entity.Auction, int64, error) {
	auctions, total, err := srv.auctionRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list listings")
	}

	return auctions, total, nil
}

// GetListing returns a listing with its photos.
func (srv *listingService) GetListing(ctx context.Context, id uuid.UUID) (*entity.Auction, error) {
	auction, err := srv.auctionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get listing")
	}

	return auction, nil
}

// ListStatuses returns the auction status lookup rows.
func (srv *listingService) ListStatuses(ctx context.Context) ([]*entity.AuctionStatus, error) {
	statuses, err := srv.auctionRepo.ListStatuses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list auction statuses")
	}

	return statuses, nil
}

// ListBids returns the newest bids of an auction.
func (srv *listingService) ListBids(ctx context.Context, auctionID uuid.UUID, limit int) ([]*entity.Bid, error) {
	if limit <= 0 {
		limit = defaultBidLimit
	}
	if limit > maxBidLimit {
		limit = maxBidLimit
	}

	bids, err := srv.auctionRepo.ListBids(ctx, auctionID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bids")
	}

	return bids, nil
}

// DeleteListings soft-deletes listings by moving them to cancelled, or removes them.
func (srv *listingService) DeleteListings(ctx context.Context, req entity.DeleteRequest) (*usecase.LifecycleResult, error) {
	if err := validateDeleteRequest(req); err != nil {
		return nil, err
	}

	var (
		affected int64
		err      error
	)
	switch req.Type {
	case entity.DeleteSoft:
		affected, err = srv.softDeleteListings(ctx, req)
	default:
		affected, err = srv.hardDeleteListings(ctx, req)
	}
	srv.metrics.RecordLifecycle("listings", req, err)
	if err != nil {
		srv.log(ctx).Error("Listing delete failed",
			slog.String("scope", string(req.Scope)),
			slog.String("type", string(req.Type)),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Listings deleted",
		slog.String("scope", string(req.Scope)),
		slog.String("type", string(req.Type)),
		slog.Int64("affected", affected),
	)
	srv.invalidator.publish(ctx, "listings deleted", entity.ViewListings, entity.ViewAuctions)

	return &usecase.LifecycleResult{Affected: affected}, nil
}

func (srv *listingService) softDeleteListings(ctx context.Context, req entity.DeleteRequest) (int64, error) {
	cancelled, err := srv.auctionRepo.FindStatusByName(ctx, entity.AuctionCancelled)
	if errors.Is(err, domainerrors.ErrAuctionStatusNotFound) {
		return 0, domainerrors.ErrCancelledStatusNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to look up cancelled status")
	}

	if req.IsAll() {
		return srv.auctionRepo.UpdateStatusAll(ctx, cancelled.ID)
	}

	return srv.auctionRepo.UpdateStatus(ctx, uniqueIDs(req.IDs), cancelled.ID)
}

func (srv *listingService) hardDeleteListings(ctx context.Context, req entity.DeleteRequest) (int64, error) {
	if req.IsAll() {
		return srv.auctionRepo.DeleteAll(ctx)
	}

	return srv.auctionRepo.DeleteByIDs(ctx, uniqueIDs(req.IDs))
}

// ModerateListing moves a listing out of pending_approval and writes the audit row
// in the same transaction.
func (srv *listingService) ModerateListing(ctx context.Context, moderatorID, listingID uuid.UUID, input *usecase.ModerateListingInput) error {
	if !input.Action.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("action must be approve or reject")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		auctionRepo := repoFactory.NewAuctionRepository()

		pending, err := auctionRepo.FindStatusByName(ctx, entity.AuctionPendingApproval)
		if err != nil {
			return errors.Wrap(err, "failed to look up pending status")
		}
		target, err := auctionRepo.FindStatusByName(ctx, input.Action.TargetStatus())
		if err != nil {
			return errors.Wrap(err, "failed to look up target status")
		}

		moved, err := auctionRepo.TransitionStatus(ctx, listingID, pending.ID, target.ID)
		if err != nil {
			return errors.Wrap(err, "failed to update listing status")
		}
		if !moved {
			if _, findErr := auctionRepo.FindByID(ctx, listingID); findErr != nil {
				return findErr
			}

			return domainerrors.ErrListingNotPending
		}

		moderator := moderatorID

		return auctionRepo.CreateModeration(ctx, &entity.AuctionModeration{
			AuctionID:   listingID,
			ModeratorID: &moderator,
			Action:      input.Action,
			Reason:      input.Reason,
			Notes:       input.Notes,
			CreatedAt:   time.Now(),
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Listing moderation failed", slog.Any("listingID", listingID), slog.Any("error", err))

		return errors.Wrap(err, "failed to moderate listing")
	}

	srv.log(ctx).Info("Listing moderated",
		slog.Any("listingID", listingID),
		slog.Any("moderatorID", moderatorID),
		slog.String("action", string(input.Action)),
	)
	srv.invalidator.publish(ctx, "listing moderated", entity.ViewListings, entity.ViewAuctions, entity.ViewDashboard)

	return nil
}

// SetListingActive flips the is_active flag of a listing.
func (srv *listingService) SetListingActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := srv.auctionRepo.SetActive(ctx, id, active); err != nil {
		return errors.Wrap(err, "failed to update listing")
	}

	srv.invalidator.publish(ctx, "listing toggled", entity.ViewListings, entity.ViewAuctions)

	return nil
}
