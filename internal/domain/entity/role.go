package entity

import "github.com/google/uuid"

// UserRoleName is the role_name of a marketplace role.
type UserRoleName string

const (
	UserRoleBuyer  UserRoleName = "buyer"
	UserRoleSeller UserRoleName = "seller"
	UserRoleBoth   UserRoleName = "both"
)

// UserRole is a lookup row joined to users by role_id.
type UserRole struct {
	ID          uuid.UUID    `json:"id"`
	Name        UserRoleName `json:"role_name"`
	DisplayName string       `json:"display_name"`
}

// AdminRoleName is the role_name of a back-office role.
type AdminRoleName string

const (
	AdminRoleSuperAdmin AdminRoleName = "super_admin"
	AdminRoleModerator  AdminRoleName = "moderator"
)

// AdminUser grants back-office access to a user.
type AdminUser struct {
	ID       uuid.UUID     `json:"id"`
	UserID   uuid.UUID     `json:"user_id"`
	Role     AdminRoleName `json:"role"`
	IsActive bool          `json:"is_active"`
}
