package usecase

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput represents a password sign-in
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the issued access token
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	UserID      uuid.UUID `json:"user_id"`
}

// AuthUsecase defines the interface for admin authentication
type AuthUsecase interface {
	// Authenticate verifies a bearer token and requires an active admin record.
	Authenticate(ctx context.Context, token string) (*entity.AdminSession, error)

	// Login signs an admin in with email and password. Only identity providers with
	// password support can serve it.
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)
}
