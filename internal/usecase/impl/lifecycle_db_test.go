package impl

import (
	"context"
	"testing"
	"time"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	mockService "autobid/internal/mocks/service"
	"autobid/internal/infra/persistence/model"
	"autobid/internal/infra/persistence/postgres"
	"autobid/internal/infra/persistence/sqlitetest"
	"autobid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// marketplace is a small seeded data set: a seller with a listing that carries a
// bid, a photo, a moderation row and a deal with a timeline entry.
type marketplace struct {
	admin       *model.UserModel
	seller      *model.UserModel
	buyer       *model.UserModel
	auction     *model.AuctionModel
	transaction *model.AuctionTransactionModel
}

func seedMarketplace(t *testing.T, db *gorm.DB, lookups *sqlitetest.Lookups) *marketplace {
	t.Helper()

	m := &marketplace{
		admin:  sqlitetest.CreateUser(t, db, "admin@autobid.test"),
		seller: sqlitetest.CreateUser(t, db, "seller@autobid.test"),
		buyer:  sqlitetest.CreateUser(t, db, "buyer@autobid.test"),
	}
	m.auction = sqlitetest.CreateAuction(t, db, m.seller.ID, lookups.AuctionStatuses["live"], "2019 Toyota Vios")

	require.NoError(t, db.Create(&model.BidModel{AuctionID: m.auction.ID, BidderID: m.buyer.ID, BidAmount: 101000}).Error)
	require.NoError(t, db.Create(&model.AuctionPhotoModel{AuctionID: m.auction.ID, PhotoURL: "https://cdn.test/1.jpg", IsPrimary: true}).Error)
	require.NoError(t, db.Create(&model.AuctionModerationModel{AuctionID: m.auction.ID, ModeratorID: &m.admin.ID, Action: "approve"}).Error)

	m.transaction = &model.AuctionTransactionModel{
		AuctionID:   m.auction.ID,
		SellerID:    m.seller.ID,
		BuyerID:     m.buyer.ID,
		AgreedPrice: 101000,
		Status:      string(entity.TransactionInProgress),
	}
	require.NoError(t, db.Create(m.transaction).Error)
	require.NoError(t, db.Create(&model.TransactionTimelineModel{
		TransactionID: m.transaction.ID,
		Title:         "Deal opened",
		EventType:     "created",
		ActorID:       &m.admin.ID,
	}).Error)

	return m
}

func TestListingService_HardDeleteCascades(t *testing.T) {
	db, lookups := sqlitetest.OpenSeeded(t)
	m := seedMarketplace(t, db, lookups)
	srv := NewListingService(ListingServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		AuctionRepo: postgres.NewAuctionRepository(db),
		Publisher:   newPublisher(t),
		Metrics:     newMetrics(t),
		Logger:      newDiscardLogger(),
	})

	result, err := srv.DeleteListings(context.Background(), entity.DeleteRequest{
		Scope: entity.ScopeSingle,
		Type:  entity.DeleteHard,
		IDs:   []uuid.UUID{m.auction.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Affected)

	for _, table := range []string{"auctions", "bids", "auction_photos", "auction_moderation", "auction_transactions", "transaction_timeline"} {
		assert.Zero(t, sqlitetest.Count(t, db, table), table)
	}
	assert.Equal(t, int64(3), sqlitetest.Count(t, db, "users"))
}

func TestListingService_SoftDeleteAll(t *testing.T) {
	db, lookups := sqlitetest.OpenSeeded(t)
	seller := sqlitetest.CreateUser(t, db, "seller@autobid.test")
	sqlitetest.CreateAuction(t, db, seller.ID, lookups.AuctionStatuses["live"], "A")
	sqlitetest.CreateAuction(t, db, seller.ID, lookups.AuctionStatuses["pending_approval"], "B")
	sqlitetest.CreateAuction(t, db, seller.ID, lookups.AuctionStatuses["cancelled"], "C")

	srv := NewListingService(ListingServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		AuctionRepo: postgres.NewAuctionRepository(db),
		Publisher:   newPublisher(t),
		Metrics:     newMetrics(t),
		Logger:      newDiscardLogger(),
	})

	result, err := srv.DeleteListings(context.Background(), entity.DeleteRequest{Scope: entity.ScopeAll, Type: entity.DeleteSoft})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Affected)

	var remaining int64
	require.NoError(t, db.Model(&model.AuctionModel{}).
		Where("status_id <> ?", lookups.AuctionStatuses["cancelled"]).
		Count(&remaining).Error)
	assert.Zero(t, remaining)
	assert.Equal(t, int64(3), sqlitetest.Count(t, db, "auctions"))
}

func TestListingService_ModerateListing_WritesAudit(t *testing.T) {
	db, lookups := sqlitetest.OpenSeeded(t)
	moderator := sqlitetest.CreateUser(t, db, "mod@autobid.test")
	seller := sqlitetest.CreateUser(t, db, "seller@autobid.test")
	auction := sqlitetest.CreateAuction(t, db, seller.ID, lookups.AuctionStatuses["pending_approval"], "Honda City")

	srv := NewListingService(ListingServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		AuctionRepo: postgres.NewAuctionRepository(db),
		Publisher:   newPublisher(t),
		Metrics:     newMetrics(t),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()

	require.NoError(t, srv.ModerateListing(ctx, moderator.ID, auction.ID, &usecase.ModerateListingInput{Action: entity.ModerationApprove}))

	var stored model.AuctionModel
	require.NoError(t, db.First(&stored, "id = ?", auction.ID).Error)
	assert.Equal(t, lookups.AuctionStatuses["scheduled"], stored.StatusID)
	assert.Equal(t, int64(1), sqlitetest.Count(t, db, "auction_moderation"))

	err := srv.ModerateListing(ctx, moderator.ID, auction.ID, &usecase.ModerateListingInput{Action: entity.ModerationReject})
	assert.ErrorIs(t, err, domainerrors.ErrListingNotPending)
	assert.Equal(t, int64(1), sqlitetest.Count(t, db, "auction_moderation"))
}

func newUserServiceOnDB(t *testing.T, db *gorm.DB) (usecase.UserUsecase, *mockService.MockIdentityProvider) {
	identity := mockService.NewMockIdentityProvider(t)
	srv := NewUserService(UserServiceParams{
		TxManager:        postgres.NewTransactionManager(db),
		UserRepo:         postgres.NewUserRepository(db),
		IdentityProvider: identity,
		Publisher:        newPublisher(t),
		Metrics:          newMetrics(t),
		Logger:           newDiscardLogger(),
	})

	return srv, identity
}

func TestUserService_HardDeleteClearsReferences(t *testing.T) {
	db, lookups := sqlitetest.OpenSeeded(t)
	m := seedMarketplace(t, db, lookups)
	reviewer := sqlitetest.CreateUser(t, db, "reviewer@autobid.test")

	require.NoError(t, db.Create(&model.KycDocumentModel{
		UserID:       m.buyer.ID,
		StatusID:     lookups.KycStatuses["approved"],
		DocumentType: "national_id",
		ReviewedBy:   &reviewer.ID,
	}).Error)
	require.NoError(t, db.Create(&model.PaymentModel{BuyerID: m.buyer.ID, Amount: 5000, VerifiedBy: &reviewer.ID}).Error)

	srv, identity := newUserServiceOnDB(t, db)
	identity.EXPECT().DeleteIdentity(mock.Anything, reviewer.ID).Return(nil)
	identity.EXPECT().DeleteIdentity(mock.Anything, m.admin.ID).Return(assert.AnError)

	result, err := srv.DeleteUsers(context.Background(), m.seller.ID, entity.DeleteRequest{
		Scope: entity.ScopeSelected,
		Type:  entity.DeleteHard,
		IDs:   []uuid.UUID{reviewer.ID, m.seller.ID, m.admin.ID},
	})
	require.NoError(t, err, "identity cleanup failures are only logged")
	assert.Equal(t, int64(2), result.Affected)

	var kyc model.KycDocumentModel
	require.NoError(t, db.First(&kyc).Error)
	assert.Nil(t, kyc.ReviewedBy)

	var payment model.PaymentModel
	require.NoError(t, db.First(&payment).Error)
	assert.Nil(t, payment.VerifiedBy)

	var timeline model.TransactionTimelineModel
	require.NoError(t, db.First(&timeline).Error)
	assert.Nil(t, timeline.ActorID)

	assert.Equal(t, int64(2), sqlitetest.Count(t, db, "users"))
}

func TestUserService_HardDeleteAllKeepsCaller(t *testing.T) {
	db, lookups := sqlitetest.OpenSeeded(t)
	m := seedMarketplace(t, db, lookups)

	srv, identity := newUserServiceOnDB(t, db)
	identity.EXPECT().DeleteIdentity(mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil).Times(2)

	result, err := srv.DeleteUsers(context.Background(), m.admin.ID, entity.DeleteRequest{Scope: entity.ScopeAll, Type: entity.DeleteHard})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Affected)

	assert.Equal(t, int64(1), sqlitetest.Count(t, db, "users"))
	assert.Zero(t, sqlitetest.Count(t, db, "auctions"), "the seller's listings cascade")
}

func TestUserService_SoftDeleteAllKeepsCaller(t *testing.T) {
	db, lookups := sqlitetest.OpenSeeded(t)
	m := seedMarketplace(t, db, lookups)
	srv, _ := newUserServiceOnDB(t, db)

	result, err := srv.DeleteUsers(context.Background(), m.admin.ID, entity.DeleteRequest{Scope: entity.ScopeAll, Type: entity.DeleteSoft})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Affected)

	var active []model.UserModel
	require.NoError(t, db.Where("is_active = ?", true).Find(&active).Error)
	require.Len(t, active, 1)
	assert.Equal(t, m.admin.ID, active[0].ID)
}

func TestTransactionService_ApprovalGate(t *testing.T) {
	db, lookups := sqlitetest.OpenSeeded(t)
	m := seedMarketplace(t, db, lookups)
	srv := NewTransactionService(TransactionServiceParams{
		TxManager:       postgres.NewTransactionManager(db),
		TransactionRepo: postgres.NewAuctionTransactionRepository(db),
		Publisher:       newPublisher(t),
		Logger:          newDiscardLogger(),
	})
	ctx := context.Background()

	detail, err := srv.GetTransaction(ctx, m.transaction.ID)
	require.NoError(t, err)
	assert.False(t, detail.CanApprove)
	assert.True(t, detail.CanReject)

	err = srv.ApproveTransaction(ctx, m.admin.ID, m.transaction.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionNotApprovable, "parties have not confirmed yet")

	require.NoError(t, db.Model(m.transaction).Updates(map[string]any{"seller_confirmed": true, "buyer_confirmed": true}).Error)

	detail, err = srv.GetTransaction(ctx, m.transaction.ID)
	require.NoError(t, err)
	assert.True(t, detail.CanApprove)

	notes := "documents verified"
	require.NoError(t, srv.ApproveTransaction(ctx, m.admin.ID, m.transaction.ID, &notes))

	detail, err = srv.GetTransaction(ctx, m.transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionSold, detail.Transaction.Status)
	assert.False(t, detail.CanApprove)
	assert.False(t, detail.CanReject)
	assert.True(t, detail.Transaction.AdminApproved)
	require.NotNil(t, detail.Transaction.AdminApprovedBy)
	assert.Equal(t, m.admin.ID, *detail.Transaction.AdminApprovedBy)
	require.NotNil(t, detail.Transaction.CompletedAt)

	last := detail.Timeline[len(detail.Timeline)-1]
	assert.Equal(t, entity.TimelineAdminApproved, last.EventType)
	assert.Equal(t, "Transaction Approved", last.Title)

	err = srv.ApproveTransaction(ctx, m.admin.ID, m.transaction.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionNotApprovable, "a deal is approved once")

	err = srv.RejectTransaction(ctx, m.admin.ID, m.transaction.ID, "too late")
	assert.ErrorIs(t, err, domainerrors.ErrTransactionNotRejectable)

	err = srv.ApproveTransaction(ctx, m.admin.ID, uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionNotFound)
}

func TestTransactionService_Reject(t *testing.T) {
	db, lookups := sqlitetest.OpenSeeded(t)
	m := seedMarketplace(t, db, lookups)
	srv := NewTransactionService(TransactionServiceParams{
		TxManager:       postgres.NewTransactionManager(db),
		TransactionRepo: postgres.NewAuctionTransactionRepository(db),
		Publisher:       newPublisher(t),
		Logger:          newDiscardLogger(),
	})
	ctx := context.Background()

	assert.ErrorIs(t, srv.RejectTransaction(ctx, m.admin.ID, m.transaction.ID, "  "), domainerrors.ErrNotesRequired)

	require.NoError(t, srv.RejectTransaction(ctx, m.admin.ID, m.transaction.ID, "buyer backed out"))

	var stored model.AuctionTransactionModel
	require.NoError(t, db.First(&stored, "id = ?", m.transaction.ID).Error)
	assert.Equal(t, string(entity.TransactionDealFailed), stored.Status)
	require.NotNil(t, stored.AdminNotes)
	assert.Equal(t, "buyer backed out", *stored.AdminNotes)

	var events int64
	require.NoError(t, db.Model(&model.TransactionTimelineModel{}).
		Where("transaction_id = ? AND event_type = ?", m.transaction.ID, entity.TimelineCancelled).
		Count(&events).Error)
	assert.Equal(t, int64(1), events)
}

func TestKycService_ApproveVerifiesUser(t *testing.T) {
	db, lookups := sqlitetest.OpenSeeded(t)
	reviewer := sqlitetest.CreateUser(t, db, "reviewer@autobid.test")
	applicant := sqlitetest.CreateUser(t, db, "applicant@autobid.test")
	submitted := time.Now().Add(-time.Hour)
	doc := &model.KycDocumentModel{
		UserID:       applicant.ID,
		StatusID:     lookups.KycStatuses["pending"],
		DocumentType: "national_id",
		SubmittedAt:  &submitted,
	}
	require.NoError(t, db.Create(doc).Error)

	srv := NewKycService(KycServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		KycRepo:   postgres.NewKycRepository(db),
		Storage:   mockService.NewMockObjectStorage(t),
		Publisher: newPublisher(t),
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	require.NoError(t, srv.ApproveKyc(ctx, reviewer.ID, doc.ID))

	var user model.UserModel
	require.NoError(t, db.First(&user, "id = ?", applicant.ID).Error)
	assert.True(t, user.IsVerified)

	var stored model.KycDocumentModel
	require.NoError(t, db.First(&stored, "id = ?", doc.ID).Error)
	assert.Equal(t, lookups.KycStatuses["approved"], stored.StatusID)
	require.NotNil(t, stored.ReviewedBy)
	assert.Equal(t, reviewer.ID, *stored.ReviewedBy)

	err := srv.RejectKyc(ctx, reviewer.ID, doc.ID, "blurry")
	assert.ErrorIs(t, err, domainerrors.ErrKycNotReviewable)

	err = srv.ApproveKyc(ctx, reviewer.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrKycNotFound)
}
