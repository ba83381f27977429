package usecase

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// TransactionUsecase defines the interface for post-auction deal review
type TransactionUsecase interface {
	ListTransactions(ctx context.Context, filter *entity.TransactionFilter) ([]*entity.AuctionTransaction, error)
	GetTransactionStats(ctx context.Context) (*entity.TransactionStats, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*entity.TransactionDetail, error)

	// ApproveTransaction marks a deal sold. The write itself re-checks the approval gate.
	ApproveTransaction(ctx context.Context, adminID, id uuid.UUID, notes *string) error

	// RejectTransaction fails an open deal. Notes are required.
	RejectTransaction(ctx context.Context, adminID, id uuid.UUID, notes string) error
}
