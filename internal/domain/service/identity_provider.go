package service

import (
	"context"

	"github.com/google/uuid"
)

// NewIdentity describes an authentication identity to create.
type NewIdentity struct {
	Email         string
	Password      string
	DisplayName   string
	EmailVerified bool
}

// IdentityUpdate carries the identity fields to change. Nil fields are left untouched.
type IdentityUpdate struct {
	DisplayName   *string
	EmailVerified *bool
	Password      *string
}

// IdentityProvider is the external authentication system whose identities mirror the users table.
type IdentityProvider interface {
	// CreateIdentity registers an identity keyed by the given user id.
	CreateIdentity(ctx context.Context, id uuid.UUID, identity *NewIdentity) error

	// UpdateIdentity applies a partial update.
	UpdateIdentity(ctx context.Context, id uuid.UUID, update *IdentityUpdate) error

	// DeleteIdentity removes an identity.
	DeleteIdentity(ctx context.Context, id uuid.UUID) error

	// VerifyToken validates a bearer token and returns the user id it was issued for.
	VerifyToken(ctx context.Context, token string) (uuid.UUID, error)
}

// CredentialAuthenticator is implemented by providers that can sign users in with a password.
type CredentialAuthenticator interface {
	// SignIn checks the credentials and returns a bearer token for the user.
	SignIn(ctx context.Context, email, password string) (token string, userID uuid.UUID, err error)
}
