package identity

import (
	"context"
	"testing"
	"time"

	"autobid/config"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/service"
	"autobid/internal/infra/auth"
	"autobid/internal/infra/persistence/postgres"
	"autobid/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestLocalProvider(t *testing.T) LocalProvider {
	t.Helper()

	return newLocalProviderOn(t, sqlitetest.Open(t), bcrypt.MinCost)
}

func newLocalProviderOn(t *testing.T, db *gorm.DB, cost int) LocalProvider {
	t.Helper()

	cfg := &config.Config{Identity: &config.IdentityConfig{BcryptCost: cost, TokenTTL: time.Minute}}
	cfg.SecretKey.Access = "local_provider_secret_key_long_enough_for_hs256"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewLocalProvider(postgres.NewIdentityRepository(db), auth.NewBcryptHasher(cfg), tokens)
}

func TestLocalProvider_SignInRoundTrip(t *testing.T) {
	provider := newTestLocalProvider(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, provider.CreateIdentity(ctx, id, &service.NewIdentity{
		Email:    "Admin@AutoBid.test",
		Password: "s3cret-password",
	}))

	token, userID, err := provider.SignIn(ctx, "admin@autobid.test", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, id, userID)

	verified, err := provider.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, id, verified)
}

func TestLocalProvider_SignInRejectsWrongPassword(t *testing.T) {
	provider := newTestLocalProvider(t)
	ctx := context.Background()

	require.NoError(t, provider.CreateIdentity(ctx, uuid.New(), &service.NewIdentity{
		Email:    "moderator@autobid.test",
		Password: "right-password",
	}))

	_, _, err := provider.SignIn(ctx, "moderator@autobid.test", "wrong-password")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, _, err = provider.SignIn(ctx, "nobody@autobid.test", "right-password")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalProvider_UpdatePassword(t *testing.T) {
	provider := newTestLocalProvider(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, provider.CreateIdentity(ctx, id, &service.NewIdentity{
		Email:    "seller@autobid.test",
		Password: "old-password",
	}))

	newPassword := "new-password"
	require.NoError(t, provider.UpdateIdentity(ctx, id, &service.IdentityUpdate{Password: &newPassword}))

	_, _, err := provider.SignIn(ctx, "seller@autobid.test", "old-password")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, _, err = provider.SignIn(ctx, "seller@autobid.test", newPassword)
	assert.NoError(t, err)
}

func TestLocalProvider_VerifyTokenRejectsGarbage(t *testing.T) {
	provider := newTestLocalProvider(t)

	_, err := provider.VerifyToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestLocalProvider_SignInUpgradesHashCost(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	id := uuid.New()

	require.NoError(t, newLocalProviderOn(t, db, bcrypt.MinCost).CreateIdentity(ctx, id, &service.NewIdentity{
		Email:    "ops@autobid.test",
		Password: "rotate-me-please",
	}))

	_, _, err := newLocalProviderOn(t, db, bcrypt.MinCost+1).SignIn(ctx, "ops@autobid.test", "rotate-me-please")
	require.NoError(t, err)

	stored, err := postgres.NewIdentityRepository(db).FindByID(ctx, id)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}
