package postgres

import (
	"context"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	"autobid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// FindActiveByUserID returns the active admin record of a user.
func (repo *adminRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	if err := repo.db.WithContext(ctx).
		Preload("Role").
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotAdmin
		}

		return nil, errors.Wrap(err, "failed to find admin user")
	}

	admin := &entity.AdminUser{
		ID:       adminM.ID,
		UserID:   adminM.UserID,
		IsActive: adminM.IsActive,
	}
	if adminM.Role != nil {
		admin.Role = entity.AdminRoleName(adminM.Role.RoleName)
	}

	return admin, nil
}
