package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a locally stored sign-in credential. Its ID equals the users.id it authenticates.
type Identity struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	DisplayName   string
	EmailVerified bool
	Disabled      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AdminSession is the authenticated caller of an admin request.
type AdminSession struct {
	UserID uuid.UUID
	Role   AdminRoleName
}
