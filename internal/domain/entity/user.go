package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account (buyer, seller or both).
type User struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Username    *string    `json:"username,omitempty"`
	FullName    string     `json:"full_name"`
	DisplayName string     `json:"display_name"`
	FirstName   string     `json:"first_name"`
	MiddleName  *string    `json:"middle_name,omitempty"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Sex         *string    `json:"sex,omitempty"`
	RoleID      *uuid.UUID `json:"role_id,omitempty"`
	IsVerified  bool       `json:"is_verified"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Role        *UserRole  `json:"role,omitempty"`
}

// UserSummary is the short form of a user embedded in other records.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

// ComposeDisplayName joins name parts as "first [middle] last".
func ComposeDisplayName(first string, middle *string, last string) string {
	parts := []string{strings.TrimSpace(first)}
	if middle != nil && strings.TrimSpace(*middle) != "" {
		parts = append(parts, strings.TrimSpace(*middle))
	}
	parts = append(parts, strings.TrimSpace(last))

	return strings.TrimSpace(strings.Join(parts, " "))
}

// UserFlag is a boolean column an admin can toggle.
type UserFlag string

const (
	UserFlagVerified UserFlag = "is_verified"
	UserFlagActive   UserFlag = "is_active"
)

// IsValid reports whether f is a toggleable column.
func (f UserFlag) IsValid() bool {
	return f == UserFlagVerified || f == UserFlagActive
}

// UserFilter narrows user queries.
type UserFilter struct {
	Search     string
	IsActive   *bool
	IsVerified *bool
	Limit      int
	Offset     int
}

// UserReference names a column that points at users without an ON DELETE action.
// These must be cleared before a user row can be removed.
type UserReference struct {
	Table  string
	Column string
}

// DanglingUserReferences lists the non-cascading user references cleared during a hard delete.
var DanglingUserReferences = []UserReference{
	{Table: "transaction_timeline", Column: "actor_id"},
	{Table: "kyc_documents", Column: "reviewed_by"},
	{Table: "payments", Column: "verified_by"},
	{Table: "admin_users", Column: "created_by"},
}
