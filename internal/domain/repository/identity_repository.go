package repository

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityRepository persists local sign-in credentials.
type IdentityRepository interface {
	Create(ctx context.Context, identity *entity.Identity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail matches ignoring case. It returns errors.ErrInvalidCredentials on a miss.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)
	Update(ctx context.Context, identity *entity.Identity) error
	Delete(ctx context.Context, id uuid.UUID) error
}
