// Package service declares the ports the admin use cases depend on. Adapters live
// under internal/infra.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PasswordHasher stores and checks admin passwords for the local identity provider.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool

	// NeedsRehash reports whether hash was produced with settings other than the
	// current ones, so a successful sign-in can upgrade it.
	NeedsRehash(hash string) bool
}

// AccessClaims is the payload of an admin access token.
type AccessClaims struct {
	AdminID uuid.UUID `json:"aid"`
	Email   string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and parses the access tokens of the local identity provider.
type TokenService interface {
	IssueAccessToken(adminID uuid.UUID, email string) (string, error)
	ParseAccessToken(token string) (*AccessClaims, error)
	AccessTokenTTL() time.Duration
}
