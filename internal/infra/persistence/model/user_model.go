package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRoleModel mirrors the 'user_roles' lookup table.
type UserRoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleName    string    `gorm:"type:varchar(30);not null;unique"`
	DisplayName string    `gorm:"type:varchar(60);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}

// BeforeCreate assigns the primary key.
func (m *UserRoleModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// UserModel mirrors the 'users' table. The id is shared with the authentication identity.
type UserModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Email       string         `gorm:"type:varchar(255);unique;not null"`
	Username    *string        `gorm:"type:varchar(100)"`
	FullName    string         `gorm:"type:varchar(255);not null"`
	DisplayName string         `gorm:"type:varchar(255);not null"`
	FirstName   string         `gorm:"type:varchar(100);not null"`
	MiddleName  *string        `gorm:"type:varchar(100)"`
	LastName    string         `gorm:"type:varchar(100);not null"`
	DateOfBirth *time.Time     `gorm:"type:date"`
	Sex         *string        `gorm:"type:varchar(20)"`
	RoleID      *uuid.UUID     `gorm:"type:uuid"`
	Role        *UserRoleModel `gorm:"foreignKey:RoleID;constraint:OnDelete:SET NULL"`
	IsVerified  bool           `gorm:"not null"`
	IsActive    bool           `gorm:"not null"`
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// AdminRoleModel mirrors the 'admin_roles' lookup table.
type AdminRoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleName    string    `gorm:"type:varchar(30);not null;unique"`
	DisplayName string    `gorm:"type:varchar(60);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AdminRoleModel) TableName() string {
	return "admin_roles"
}

// BeforeCreate assigns the primary key.
func (m *AdminRoleModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// AdminUserModel mirrors the 'admin_users' table. created_by is not cascaded and
// must be cleared before the creating user is deleted.
type AdminUserModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;unique"`
	User      *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RoleID    uuid.UUID       `gorm:"type:uuid;not null"`
	Role      *AdminRoleModel `gorm:"foreignKey:RoleID"`
	IsActive  bool            `gorm:"not null"`
	CreatedBy *uuid.UUID      `gorm:"type:uuid"`
	Creator   *UserModel      `gorm:"foreignKey:CreatedBy"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminUserModel) TableName() string {
	return "admin_users"
}

// BeforeCreate assigns the primary key.
func (m *AdminUserModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// IdentityModel mirrors the 'auth_identities' table used by the local identity provider.
// It is written before the users row exists, so it carries no foreign key.
type IdentityModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	DisplayName   string    `gorm:"type:varchar(255);not null"`
	EmailVerified bool      `gorm:"not null"`
	Disabled      bool      `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "auth_identities"
}
