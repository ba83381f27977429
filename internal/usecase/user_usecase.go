package usecase

import (
	"context"
	"time"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput represents the input for creating a marketplace user
type CreateUserInput struct {
	Email      string     `json:"email" validate:"required,email"`
	Password   string     `json:"password,omitempty" validate:"omitempty,min=8"`
	Username   *string    `json:"username,omitempty" validate:"omitempty,max=64"`
	FirstName  string     `json:"first_name" validate:"required,max=100"`
	MiddleName *string    `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	LastName   string     `json:"last_name" validate:"required,max=100"`
	Sex        *string    `json:"sex,omitempty"`
	RoleID     *uuid.UUID `json:"role_id,omitempty"`
	IsVerified bool       `json:"is_verified"`
	IsActive   *bool      `json:"is_active,omitempty"`
}

// UpdateUserInput represents the editable profile fields. Nil fields are left untouched.
type UpdateUserInput struct {
	Username    *string    `json:"username,omitempty" validate:"omitempty,max=64"`
	FirstName   *string    `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	MiddleName  *string    `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	LastName    *string    `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Sex         *string    `json:"sex,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	RoleID      *uuid.UUID `json:"role_id,omitempty"`
	IsVerified  *bool      `json:"is_verified,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

// ChangePasswordInput represents a password change of the signed-in admin
type ChangePasswordInput struct {
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// UserUsecase defines the interface for user administration
type UserUsecase interface {
	ListUsers(ctx context.Context, filter *entity.UserFilter) ([]*entity.User, int64, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListRoles(ctx context.Context) ([]*entity.UserRole, error)

	// CreateUser creates the authentication identity first, then the user row.
	// The identity is removed again when the row cannot be written.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	ToggleUserFlag(ctx context.Context, id uuid.UUID, flag entity.UserFlag, value bool) error

	// DeleteUsers deactivates or removes users over a scope. The caller is never a target.
	DeleteUsers(ctx context.Context, callerID uuid.UUID, req entity.DeleteRequest) (*LifecycleResult, error)

	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
}
