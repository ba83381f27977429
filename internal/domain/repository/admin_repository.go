package repository

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminRepository reads the admin_users table.
type AdminRepository interface {
	// FindActiveByUserID returns the active admin record of a user, or errors.ErrNotAdmin.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error)
}
