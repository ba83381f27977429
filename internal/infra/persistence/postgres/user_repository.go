package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	"autobid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// List returns one page of users with their role.
func (repo *userRepository) List(ctx context.Context, filter *entity.UserFilter) ([]*entity.User, int64, error) {
	if filter == nil {
		filter = &entity.UserFilter{}
	}

	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(email) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(display_name) LIKE ?", pattern, pattern, pattern)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userModels []*model.UserModel
	if err := query.Session(&gorm.Session{}).
		Preload("Role").
		Order("created_at DESC").
		Limit(pageSize(filter.Limit)).
		Offset(filter.Offset).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// FindByID retrieves a user by id.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Preload("Role").Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// Create inserts a new user row.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the editable profile fields of a user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":      user.Username,
			"full_name":     user.FullName,
			"display_name":  user.DisplayName,
			"first_name":    user.FirstName,
			"middle_name":   user.MiddleName,
			"last_name":     user.LastName,
			"date_of_birth": user.DateOfBirth,
			"sex":           user.Sex,
			"role_id":       user.RoleID,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// SetFlag writes one boolean flag of a user.
func (repo *userRepository) SetFlag(ctx context.Context, id uuid.UUID, flag entity.UserFlag, value bool) error {
	if !flag.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown user flag " + string(flag))
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{string(flag): value, "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user flag")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

// SetActiveByIDs writes is_active for the given users.
func (repo *userRepository) SetActiveByIDs(ctx context.Context, ids []uuid.UUID, active bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{"is_active": active, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update users")
	}

	return result.RowsAffected, nil
}

// DeactivateAllExcept clears is_active on every user but keepID.
func (repo *userRepository) DeactivateAllExcept(ctx context.Context, keepID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id <> ?", keepID).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate users")
	}

	return result.RowsAffected, nil
}

// ListIDsExcept returns the id of every user but keepID.
func (repo *userRepository) ListIDsExcept(ctx context.Context, keepID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id <> ?", keepID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user ids")
	}

	return ids, nil
}

// ClearReference sets ref to NULL on rows pointing at ids. GORM turns the nested
// Transaction into a savepoint when the repository is bound to an open transaction.
func (repo *userRepository) ClearReference(ctx context.Context, ref entity.UserReference, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var affected int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table(ref.Table).
			Where(fmt.Sprintf("%s IN ?", ref.Column), ids).
			Update(ref.Column, nil)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected

		return nil
	})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, fmt.Sprintf("failed to clear %s.%s", ref.Table, ref.Column))
	}

	return affected, nil
}

// DeleteByIDs hard-deletes users.
func (repo *userRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.UserModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete users")
	}

	return result.RowsAffected, nil
}

// ListRoles returns the user role lookup rows.
func (repo *userRepository) ListRoles(ctx context.Context) ([]*entity.UserRole, error) {
	var roleModels []*model.UserRoleModel
	if err := repo.db.WithContext(ctx).Order("role_name ASC").Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user roles")
	}

	roles := make([]*entity.UserRole, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toUserRoleDomain(roleM))
	}

	return roles, nil
}

// --- Mapper Functions ---

func toUserRoleDomain(data *model.UserRoleModel) *entity.UserRole {
	if data == nil {
		return nil
	}

	return &entity.UserRole{
		ID:          data.ID,
		Name:        entity.UserRoleName(data.RoleName),
		DisplayName: data.DisplayName,
	}
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:          data.ID,
		Email:       data.Email,
		Username:    data.Username,
		FullName:    data.FullName,
		DisplayName: data.DisplayName,
		FirstName:   data.FirstName,
		MiddleName:  data.MiddleName,
		LastName:    data.LastName,
		DateOfBirth: data.DateOfBirth,
		Sex:         data.Sex,
		RoleID:      data.RoleID,
		IsVerified:  data.IsVerified,
		IsActive:    data.IsActive,
		LastLoginAt: data.LastLoginAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Role:        toUserRoleDomain(data.Role),
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:          data.ID,
		Email:       data.Email,
		Username:    data.Username,
		FullName:    data.FullName,
		DisplayName: data.DisplayName,
		FirstName:   data.FirstName,
		MiddleName:  data.MiddleName,
		LastName:    data.LastName,
		DateOfBirth: data.DateOfBirth,
		Sex:         data.Sex,
		RoleID:      data.RoleID,
		IsVerified:  data.IsVerified,
		IsActive:    data.IsActive,
		LastLoginAt: data.LastLoginAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
