package impl

import (
	"context"
	"testing"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	mockRepo "autobid/internal/mocks/repository"
	mockService "autobid/internal/mocks/service"
	"autobid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingFixture struct {
	srv       usecase.ListingUsecase
	txManager *mockRepo.MockTransactionManager
	repo      *mockRepo.MockAuctionRepository
	publisher *mockService.MockEventPublisher
	metrics   *mockService.MockMetricsRecorder
}

func newListingFixture(t *testing.T) *listingFixture {
	f := &listingFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		repo:      mockRepo.NewMockAuctionRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		metrics:   mockService.NewMockMetricsRecorder(t),
	}
	f.srv = NewListingService(ListingServiceParams{
		TxManager:   f.txManager,
		AuctionRepo: f.repo,
		Publisher:   f.publisher,
		Metrics:     f.metrics,
		Logger:      newDiscardLogger(),
	})

	return f
}

// runInTx makes the transaction manager call fn with a factory serving repo.
func (f *listingFixture) runInTx(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAuctionRepository().Return(f.repo)
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestListingService_DeleteListings_SoftSelected(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	cancelled := &entity.AuctionStatus{ID: uuid.New(), Name: entity.AuctionCancelled}
	req := entity.DeleteRequest{Scope: entity.ScopeSelected, Type: entity.DeleteSoft, IDs: []uuid.UUID{a, b, a}}

	f.repo.EXPECT().FindStatusByName(ctx, entity.AuctionCancelled).Return(cancelled, nil)
	f.repo.EXPECT().UpdateStatus(ctx, []uuid.UUID{a, b}, cancelled.ID).Return(int64(2), nil)
	f.metrics.EXPECT().RecordLifecycle("listings", req, nil).Return()
	f.publisher.EXPECT().PublishViewInvalidated(ctx, viewsOf("listings", "auctions")).Return(nil)

	result, err := f.srv.DeleteListings(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Affected)
}

func TestListingService_DeleteListings_SoftAllUsesStatusPredicate(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	cancelled := &entity.AuctionStatus{ID: uuid.New(), Name: entity.AuctionCancelled}
	req := entity.DeleteRequest{Scope: entity.ScopeAll, Type: entity.DeleteSoft}

	f.repo.EXPECT().FindStatusByName(ctx, entity.AuctionCancelled).Return(cancelled, nil)
	f.repo.EXPECT().UpdateStatusAll(ctx, cancelled.ID).Return(int64(7), nil)
	f.metrics.EXPECT().RecordLifecycle("listings", req, nil).Return()
	f.publisher.EXPECT().PublishViewInvalidated(ctx, mock.Anything).Return(nil)

	result, err := f.srv.DeleteListings(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Affected)
}

func TestListingService_DeleteListings_CancelledStatusMissing(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	req := entity.DeleteRequest{Scope: entity.ScopeSingle, Type: entity.DeleteSoft, IDs: []uuid.UUID{uuid.New()}}

	f.repo.EXPECT().FindStatusByName(ctx, entity.AuctionCancelled).Return(nil, domainerrors.ErrAuctionStatusNotFound)
	f.metrics.EXPECT().RecordLifecycle("listings", req, mock.Anything).Return()

	_, err := f.srv.DeleteListings(ctx, req)
	assert.ErrorIs(t, err, domainerrors.ErrCancelledStatusNotFound)
}

func TestListingService_DeleteListings_HardAll(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	req := entity.DeleteRequest{Scope: entity.ScopeAll, Type: entity.DeleteHard, IDs: []uuid.UUID{uuid.New()}}

	f.repo.EXPECT().DeleteAll(ctx).Return(int64(3), nil)
	f.metrics.EXPECT().RecordLifecycle("listings", req, nil).Return()
	f.publisher.EXPECT().PublishViewInvalidated(ctx, mock.Anything).Return(assert.AnError)

	result, err := f.srv.DeleteListings(ctx, req)
	require.NoError(t, err, "a failed invalidation must not fail the delete")
	assert.Equal(t, int64(3), result.Affected)
}

func TestListingService_DeleteListings_InvalidRequest(t *testing.T) {
	f := newListingFixture(t)
	req := entity.DeleteRequest{Scope: entity.ScopeSelected, Type: entity.DeleteHard}

	_, err := f.srv.DeleteListings(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDeleteRequest)
}

func TestListingService_ModerateListing_Approve(t *testing.T) {
	f := newListingFixture(t)
	f.runInTx(t)
	ctx := context.Background()
	moderatorID, listingID := uuid.New(), uuid.New()
	pending := &entity.AuctionStatus{ID: uuid.New(), Name: entity.AuctionPendingApproval}
	scheduled := &entity.AuctionStatus{ID: uuid.New(), Name: entity.AuctionScheduled}
	reason := "looks good"

	f.repo.EXPECT().FindStatusByName(ctx, entity.AuctionPendingApproval).Return(pending, nil)
	f.repo.EXPECT().FindStatusByName(ctx, entity.AuctionScheduled).Return(scheduled, nil)
	f.repo.EXPECT().TransitionStatus(ctx, listingID, pending.ID, scheduled.ID).Return(true, nil)
	f.repo.EXPECT().
		CreateModeration(ctx, mock.MatchedBy(func(m *entity.AuctionModeration) bool {
			return m.AuctionID == listingID && *m.ModeratorID == moderatorID &&
				m.Action == entity.ModerationApprove && *m.Reason == reason
		})).
		Return(nil)
	f.publisher.EXPECT().PublishViewInvalidated(ctx, mock.Anything).Return(nil)

	err := f.srv.ModerateListing(ctx, moderatorID, listingID, &usecase.ModerateListingInput{
		Action: entity.ModerationApprove,
		Reason: &reason,
	})
	require.NoError(t, err)
}

func TestListingService_ModerateListing_NotPending(t *testing.T) {
	f := newListingFixture(t)
	f.runInTx(t)
	ctx := context.Background()
	listingID := uuid.New()
	pending := &entity.AuctionStatus{ID: uuid.New(), Name: entity.AuctionPendingApproval}
	cancelled := &entity.AuctionStatus{ID: uuid.New(), Name: entity.AuctionCancelled}

	f.repo.EXPECT().FindStatusByName(ctx, entity.AuctionPendingApproval).Return(pending, nil)
	f.repo.EXPECT().FindStatusByName(ctx, entity.AuctionCancelled).Return(cancelled, nil)
	f.repo.EXPECT().TransitionStatus(ctx, listingID, pending.ID, cancelled.ID).Return(false, nil)
	f.repo.EXPECT().FindByID(ctx, listingID).Return(&entity.Auction{ID: listingID}, nil)

	err := f.srv.ModerateListing(ctx, uuid.New(), listingID, &usecase.ModerateListingInput{Action: entity.ModerationReject})
	assert.ErrorIs(t, err, domainerrors.ErrListingNotPending)
}

func TestListingService_ModerateListing_UnknownListing(t *testing.T) {
	f := newListingFixture(t)
	f.runInTx(t)
	ctx := context.Background()
	listingID := uuid.New()
	pending := &entity.AuctionStatus{ID: uuid.New()}
	scheduled := &entity.AuctionStatus{ID: uuid.New()}

	f.repo.EXPECT().FindStatusByName(ctx, entity.AuctionPendingApproval).Return(pending, nil)
	f.repo.EXPECT().FindStatusByName(ctx, entity.AuctionScheduled).Return(scheduled, nil)
	f.repo.EXPECT().TransitionStatus(ctx, listingID, pending.ID, scheduled.ID).Return(false, nil)
	f.repo.EXPECT().FindByID(ctx, listingID).Return(nil, domainerrors.ErrListingNotFound)

	err := f.srv.ModerateListing(ctx, uuid.New(), listingID, &usecase.ModerateListingInput{Action: entity.ModerationApprove})
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_ListBids_ClampsLimit(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	auctionID := uuid.New()

	f.repo.EXPECT().ListBids(ctx, auctionID, defaultBidLimit).Return([]*entity.Bid{}, nil).Once()
	f.repo.EXPECT().ListBids(ctx, auctionID, maxBidLimit).Return([]*entity.Bid{}, nil).Once()

	_, err := f.srv.ListBids(ctx, auctionID, 0)
	require.NoError(t, err)
	_, err = f.srv.ListBids(ctx, auctionID, 10_000)
	require.NoError(t, err)
}
