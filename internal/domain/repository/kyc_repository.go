package repository

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// KycRepository defines the database operations on KYC submissions.
type KycRepository interface {
	// List returns one page of submissions with status and user summary, plus the total count.
	List(ctx context.Context, filter *entity.KycFilter) ([]*entity.KycDocument, int64, error)

	// FindByID returns a single submission.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.KycDocument, error)

	// FindStatusByName resolves a status lookup row. It returns errors.ErrKycStatusNotFound on a miss.
	FindStatusByName(ctx context.Context, name entity.KycStatusName) (*entity.KycStatus, error)

	// Review records a decision only while the submission is still reviewable
	// and reports whether a row was updated.
	Review(ctx context.Context, decision *entity.KycDecision, statusID uuid.UUID) (bool, error)
}
