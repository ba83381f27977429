package usecase

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// KycUsecase defines the interface for KYC document review
type KycUsecase interface {
	ListKyc(ctx context.Context, filter *entity.KycFilter) ([]*entity.KycDocument, int64, error)

	// GetKyc returns a submission with a signed link for every stored image.
	GetKyc(ctx context.Context, id uuid.UUID) (*entity.KycReview, error)

	// ApproveKyc approves a reviewable submission and marks its user verified.
	ApproveKyc(ctx context.Context, reviewerID, id uuid.UUID) error

	// RejectKyc rejects a reviewable submission with a reason.
	RejectKyc(ctx context.Context, reviewerID, id uuid.UUID, reason string) error
}
