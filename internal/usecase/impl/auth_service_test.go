package impl

import (
	"context"
	"testing"
	"time"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	mockRepo "autobid/internal/mocks/repository"
	mockService "autobid/internal/mocks/service"
	"autobid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	identity      *mockService.MockIdentityProvider
	authenticator *mockService.MockCredentialAuthenticator
	tokens        *mockService.MockTokenService
	adminRepo     *mockRepo.MockAdminRepository
}

func newAuthFixture(t *testing.T) *authFixture {
	return &authFixture{
		identity:      mockService.NewMockIdentityProvider(t),
		authenticator: mockService.NewMockCredentialAuthenticator(t),
		tokens:        mockService.NewMockTokenService(t),
		adminRepo:     mockRepo.NewMockAdminRepository(t),
	}
}

func (f *authFixture) service(withAuthenticator bool) usecase.AuthUsecase {
	params := AuthServiceParams{
		IdentityProvider: f.identity,
		TokenService:     f.tokens,
		AdminRepo:        f.adminRepo,
		Logger:           newDiscardLogger(),
	}
	if withAuthenticator {
		params.Authenticator = f.authenticator
	}

	return NewAuthService(params)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("active admin", func(t *testing.T) {
		f := newAuthFixture(t)
		f.identity.EXPECT().VerifyToken(ctx, "good-token").Return(userID, nil)
		f.adminRepo.EXPECT().FindActiveByUserID(ctx, userID).Return(&entity.AdminUser{
			UserID:   userID,
			Role:     entity.AdminRoleModerator,
			IsActive: true,
		}, nil)

		session, err := f.service(false).Authenticate(ctx, " good-token ")
		require.NoError(t, err)
		assert.Equal(t, userID, session.UserID)
		assert.Equal(t, entity.AdminRoleModerator, session.Role)
	})

	t.Run("empty token", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.service(false).Authenticate(ctx, "")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.identity.EXPECT().VerifyToken(ctx, "bad").Return(uuid.Nil, domainerrors.ErrInvalidToken)

		_, err := f.service(false).Authenticate(ctx, "bad")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("not an admin", func(t *testing.T) {
		f := newAuthFixture(t)
		f.identity.EXPECT().VerifyToken(ctx, "buyer-token").Return(userID, nil)
		f.adminRepo.EXPECT().FindActiveByUserID(ctx, userID).Return(nil, domainerrors.ErrNotAdmin)

		_, err := f.service(false).Authenticate(ctx, "buyer-token")
		assert.ErrorIs(t, err, domainerrors.ErrNotAdmin)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		f := newAuthFixture(t)
		f.authenticator.EXPECT().SignIn(ctx, "admin@autobid.test", "s3cret").Return("jwt", userID, nil)
		f.adminRepo.EXPECT().FindActiveByUserID(ctx, userID).Return(&entity.AdminUser{UserID: userID, Role: entity.AdminRoleSuperAdmin}, nil)
		f.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

		result, err := f.service(true).Login(ctx, &usecase.LoginInput{Email: "Admin@AutoBid.test", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "jwt", result.AccessToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, int64(900), result.ExpiresIn)
		assert.Equal(t, userID, result.UserID)
	})

	t.Run("bad credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		f.authenticator.EXPECT().SignIn(ctx, "admin@autobid.test", "wrong").Return("", uuid.Nil, domainerrors.ErrInvalidCredentials)

		_, err := f.service(true).Login(ctx, &usecase.LoginInput{Email: "admin@autobid.test", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("non-admin user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.authenticator.EXPECT().SignIn(ctx, "buyer@autobid.test", "pw").Return("jwt", userID, nil)
		f.adminRepo.EXPECT().FindActiveByUserID(ctx, userID).Return(nil, domainerrors.ErrNotAdmin)

		_, err := f.service(true).Login(ctx, &usecase.LoginInput{Email: "buyer@autobid.test", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrNotAdmin)
	})

	t.Run("provider without password sign-in", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.service(false).Login(ctx, &usecase.LoginInput{Email: "admin@autobid.test", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrIdentityUnsupported)
	})
}
