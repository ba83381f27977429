package postgres

import (
	"context"
	"time"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	"autobid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auctionTransactionRepository implements the repository.AuctionTransactionRepository interface.
type auctionTransactionRepository struct {
	db *gorm.DB
}

// NewAuctionTransactionRepository is the constructor for auctionTransactionRepository.
func NewAuctionTransactionRepository(db *gorm.DB) repository.AuctionTransactionRepository {
	return &auctionTransactionRepository{
		db: db,
	}
}

// pendingReview selects deals confirmed by both parties that still await approval.
func pendingReview(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND seller_confirmed = ? AND buyer_confirmed = ? AND admin_approved = ?",
		string(entity.TransactionInProgress), true, true, false)
}

// List returns deals with auction title and party summaries, newest first.
func (repo *auctionTransactionRepository) List(ctx context.Context, filter *entity.TransactionFilter) ([]*entity.AuctionTransaction, error) {
	if filter == nil {
		filter = &entity.TransactionFilter{}
	}

	query := repo.db.WithContext(ctx).Model(&model.AuctionTransactionModel{})
	if filter.PendingReview {
		query = query.Scopes(pendingReview)
	} else if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var transactionModels []*model.AuctionTransactionModel
	if err := query.
		Preload("Auction").
		Preload("Seller").
		Preload("Buyer").
		Order("created_at DESC").
		Limit(pageSize(filter.Limit)).
		Offset(filter.Offset).
		Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	transactions := make([]*entity.AuctionTransaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toAuctionTransactionDomain(transactionM))
	}

	return transactions, nil
}

// FindByID retrieves a single deal.
func (repo *auctionTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuctionTransaction, error) {
	var transactionM model.AuctionTransactionModel
	if err := repo.db.WithContext(ctx).
		Preload("Auction").
		Preload("Seller").
		Preload("Buyer").
		Where("id = ?", id).
		First(&transactionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by ID")
	}

	return toAuctionTransactionDomain(&transactionM), nil
}

// Stats counts deals per review state.
func (repo *auctionTransactionRepository) Stats(ctx context.Context) (*entity.TransactionStats, error) {
	stats := &entity.TransactionStats{}
	base := func() *gorm.DB {
		return repo.db.WithContext(ctx).Model(&model.AuctionTransactionModel{})
	}

	if err := base().Scopes(pendingReview).Count(&stats.PendingReview).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count pending transactions")
	}
	if err := base().Where("status = ?", string(entity.TransactionInProgress)).Count(&stats.InProgress).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count transactions in progress")
	}
	if err := base().Where("status = ?", string(entity.TransactionSold)).Count(&stats.Completed).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count completed transactions")
	}
	if err := base().Where("status = ?", string(entity.TransactionDealFailed)).Count(&stats.Failed).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count failed transactions")
	}

	return stats, nil
}

// Approve marks the deal sold. The predicate repeats AuctionTransaction.CanApprove
// so two concurrent approvals cannot both succeed.
func (repo *auctionTransactionRepository) Approve(ctx context.Context, id, adminID uuid.UUID, notes *string, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AuctionTransactionModel{}).
		Where("id = ?", id).
		Scopes(pendingReview).
		Updates(map[string]any{
			"admin_approved":    true,
			"admin_approved_by": adminID,
			"admin_notes":       notes,
			"status":            string(entity.TransactionSold),
			"completed_at":      at,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to approve transaction")
	}

	return result.RowsAffected > 0, nil
}

// Reject fails the deal while it is in progress.
func (repo *auctionTransactionRepository) Reject(ctx context.Context, id, adminID uuid.UUID, notes string, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AuctionTransactionModel{}).
		Where("id = ? AND status = ?", id, string(entity.TransactionInProgress)).
		Updates(map[string]any{
			"admin_approved_by": adminID,
			"admin_notes":       notes,
			"status":            string(entity.TransactionDealFailed),
			"completed_at":      at,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to reject transaction")
	}

	return result.RowsAffected > 0, nil
}

// ListForms returns the party forms of a deal.
func (repo *auctionTransactionRepository) ListForms(ctx context.Context, transactionID uuid.UUID) ([]*entity.TransactionForm, error) {
	var formModels []*model.TransactionFormModel
	if err := repo.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("role ASC").
		Find(&formModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transaction forms")
	}

	forms := make([]*entity.TransactionForm, 0, len(formModels))
	for _, formM := range formModels {
		forms = append(forms, &entity.TransactionForm{
			ID:               formM.ID,
			TransactionID:    formM.TransactionID,
			Role:             entity.FormRole(formM.Role),
			Status:           formM.Status,
			AgreedPrice:      formM.AgreedPrice,
			PaymentMethod:    formM.PaymentMethod,
			DeliveryDate:     formM.DeliveryDate,
			DeliveryLocation: formM.DeliveryLocation,
			Checklist: entity.LegalChecklist{
				OrCrVerified:             formM.OrCrVerified,
				DeedsOfSaleReady:         formM.DeedsOfSaleReady,
				PlateNumberConfirmed:     formM.PlateNumberConfirmed,
				RegistrationValid:        formM.RegistrationValid,
				NoOutstandingLoans:       formM.NoOutstandingLoans,
				MechanicalInspectionDone: formM.MechanicalInspectionDone,
			},
			AdditionalTerms: formM.AdditionalTerms,
			ReviewNotes:     formM.ReviewNotes,
			SubmittedAt:     formM.SubmittedAt,
			CreatedAt:       formM.CreatedAt,
			UpdatedAt:       formM.UpdatedAt,
		})
	}

	return forms, nil
}

// ListTimeline returns the timeline of a deal in chronological order.
func (repo *auctionTransactionRepository) ListTimeline(ctx context.Context, transactionID uuid.UUID) ([]*entity.TimelineEvent, error) {
	var eventModels []*model.TransactionTimelineModel
	if err := repo.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transaction timeline")
	}

	events := make([]*entity.TimelineEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, &entity.TimelineEvent{
			ID:            eventM.ID,
			TransactionID: eventM.TransactionID,
			Title:         eventM.Title,
			Description:   eventM.Description,
			EventType:     eventM.EventType,
			ActorID:       eventM.ActorID,
			CreatedAt:     eventM.CreatedAt,
		})
	}

	return events, nil
}

// ListChat returns the chat of a deal in chronological order.
func (repo *auctionTransactionRepository) ListChat(ctx context.Context, transactionID uuid.UUID) ([]*entity.ChatMessage, error) {
	var messageModels []*model.TransactionChatMessageModel
	if err := repo.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transaction chat")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, &entity.ChatMessage{
			ID:            messageM.ID,
			TransactionID: messageM.TransactionID,
			SenderID:      messageM.SenderID,
			Message:       messageM.Message,
			CreatedAt:     messageM.CreatedAt,
		})
	}

	return messages, nil
}

// AppendTimeline inserts a timeline event.
func (repo *auctionTransactionRepository) AppendTimeline(ctx context.Context, event *entity.TimelineEvent) error {
	eventM := &model.TransactionTimelineModel{
		ID:            event.ID,
		TransactionID: event.TransactionID,
		Title:         event.Title,
		Description:   event.Description,
		EventType:     event.EventType,
		ActorID:       event.ActorID,
		CreatedAt:     event.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append transaction timeline")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toAuctionTransactionDomain(data *model.AuctionTransactionModel) *entity.AuctionTransaction {
	if data == nil {
		return nil
	}

	transaction := &entity.AuctionTransaction{
		ID:                  data.ID,
		AuctionID:           data.AuctionID,
		SellerID:            data.SellerID,
		BuyerID:             data.BuyerID,
		AgreedPrice:         data.AgreedPrice,
		Status:              entity.TransactionStatus(data.Status),
		SellerFormSubmitted: data.SellerFormSubmitted,
		BuyerFormSubmitted:  data.BuyerFormSubmitted,
		SellerConfirmed:     data.SellerConfirmed,
		BuyerConfirmed:      data.BuyerConfirmed,
		AdminApproved:       data.AdminApproved,
		AdminApprovedBy:     data.AdminApprovedBy,
		AdminNotes:          data.AdminNotes,
		CreatedAt:           data.CreatedAt,
		CompletedAt:         data.CompletedAt,
		Seller:              toUserSummary(data.Seller),
		Buyer:               toUserSummary(data.Buyer),
	}
	if data.Auction != nil {
		transaction.AuctionTitle = data.Auction.Title
	}

	return transaction
}
