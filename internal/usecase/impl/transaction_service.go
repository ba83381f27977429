package impl

import (
	"context"
	"log/slog"
	"strings"
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

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	txManager       repository.TransactionManager
	transactionRepo repository.AuctionTransactionRepository
	invalidator     *invalidator
	logger          *slog.Logger
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	TransactionRepo repository.AuctionTransactionRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewTransactionService creates a new transaction review service.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		txManager:       params.TxManager,
		transactionRepo: params.TransactionRepo,
		invalidator:     &invalidator{publisher: params.Publisher, logger: params.Logger},
		logger:          params.Logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTransactions returns deals newest first.
func (srv *transactionService) ListTransactions(ctx context.Context, filter *entity.TransactionFilter) ([]*entity.AuctionTransaction, error) {
	transactions, err := srv.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

// GetTransactionStats counts deals per review state.
func (srv *transactionService) GetTransactionStats(ctx context.Context) (*entity.TransactionStats, error) {
	stats, err := srv.transactionRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction stats")
	}

	return stats, nil
}

// GetTransaction returns a deal with both forms, its timeline and chat.
func (srv *transactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.TransactionDetail, error) {
	transaction, err := srv.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	forms, err := srv.transactionRepo.ListForms(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction forms")
	}
	timeline, err := srv.transactionRepo.ListTimeline(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction timeline")
	}
	chat, err := srv.transactionRepo.ListChat(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction chat")
	}

	detail := &entity.TransactionDetail{
		Transaction: transaction,
		CanApprove:  transaction.CanApprove(),
		CanReject:   transaction.CanReject(),
		Timeline:    timeline,
		Chat:        chat,
	}
	for _, form := range forms {
		switch form.Role {
		case entity.FormRoleSeller:
			detail.SellerForm = form
		case entity.FormRoleBuyer:
			detail.BuyerForm = form
		}
	}

	return detail, nil
}

// ApproveTransaction marks the deal sold. The conditional update carries the gate,
// so of two concurrent approvals only one matches a row.
func (srv *transactionService) ApproveTransaction(ctx context.Context, adminID, id uuid.UUID, notes *string) error {
	if notes != nil && strings.TrimSpace(*notes) == "" {
		notes = nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.NewAuctionTransactionRepository()
		now := time.Now()

		approved, err := transactionRepo.Approve(ctx, id, adminID, notes, now)
		if err != nil {
			return err
		}
		if !approved {
			if _, err := transactionRepo.FindByID(ctx, id); err != nil {
				return err
			}

			return domainerrors.ErrTransactionNotApprovable
		}

		return transactionRepo.AppendTimeline(ctx, &entity.TimelineEvent{
			TransactionID: id,
			Title:         "Transaction Approved",
			Description:   notes,
			EventType:     entity.TimelineAdminApproved,
			ActorID:       &adminID,
			CreatedAt:     now,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Transaction approval failed", slog.Any("transactionID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to approve transaction")
	}

	srv.log(ctx).Info("Transaction approved", slog.Any("transactionID", id), slog.Any("adminID", adminID))
	srv.invalidator.publish(ctx, "transaction approved", entity.ViewTransactions, entity.ViewDashboard)

	return nil
}

// RejectTransaction fails an open deal.
func (srv *transactionService) RejectTransaction(ctx context.Context, adminID, id uuid.UUID, notes string) error {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return domainerrors.ErrNotesRequired
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.NewAuctionTransactionRepository()
		now := time.Now()

		rejected, err := transactionRepo.Reject(ctx, id, adminID, notes, now)
		if err != nil {
			return err
		}
		if !rejected {
			if _, err := transactionRepo.FindByID(ctx, id); err != nil {
				return err
			}

			return domainerrors.ErrTransactionNotRejectable
		}

		return transactionRepo.AppendTimeline(ctx, &entity.TimelineEvent{
			TransactionID: id,
			Title:         "Transaction Rejected",
			Description:   &notes,
			EventType:     entity.TimelineCancelled,
			ActorID:       &adminID,
			CreatedAt:     now,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Transaction rejection failed", slog.Any("transactionID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to reject transaction")
	}

	srv.log(ctx).Info("Transaction rejected", slog.Any("transactionID", id), slog.Any("adminID", adminID))
	srv.invalidator.publish(ctx, "transaction rejected", entity.ViewTransactions, entity.ViewDashboard)

	return nil
}
