package repository

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// List returns one page of users with their role, plus the total count.
	List(ctx context.Context, filter *entity.UserFilter) ([]*entity.User, int64, error)

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create inserts a new user row.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the editable profile fields of a user.
	Update(ctx context.Context, user *entity.User) error

	// SetFlag writes one boolean flag of a user.
	SetFlag(ctx context.Context, id uuid.UUID, flag entity.UserFlag, value bool) error

	// SetActiveByIDs writes is_active for the given users.
	SetActiveByIDs(ctx context.Context, ids []uuid.UUID, active bool) (int64, error)

	// DeactivateAllExcept clears is_active on every user but keepID.
	DeactivateAllExcept(ctx context.Context, keepID uuid.UUID) (int64, error)

	// ListIDsExcept returns the id of every user but keepID.
	ListIDsExcept(ctx context.Context, keepID uuid.UUID) ([]uuid.UUID, error)

	// ClearReference sets ref to NULL on rows pointing at ids. It runs inside its own savepoint
	// when called within a transaction, so a failure leaves the outer transaction usable.
	ClearReference(ctx context.Context, ref entity.UserReference, ids []uuid.UUID) (int64, error)

	// DeleteByIDs hard-deletes users. Owned rows go with them via foreign key cascades.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	// ListRoles returns the user role lookup rows.
	ListRoles(ctx context.Context) ([]*entity.UserRole, error)
}
