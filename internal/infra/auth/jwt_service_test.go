package auth

import (
	"testing"
	"time"

	"autobid/config"
	"autobid/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTokens(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{Identity: &config.IdentityConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := newTokens(t, testSecret, 30*time.Minute)
	adminID := uuid.New()

	token, err := svc.IssueAccessToken(adminID, "admin@autobid.ph")
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "admin@autobid.ph", claims.Email)
	assert.Equal(t, adminID.String(), claims.Subject)
	assert.Equal(t, 30*time.Minute, svc.AccessTokenTTL())
}

func TestJWTService_ParseRejects(t *testing.T) {
	svc := newTokens(t, testSecret, time.Minute)
	valid := func() service.AccessClaims {
		return service.AccessClaims{
			AdminID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Audience:  jwt.ClaimStrings{tokenAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
	}

	foreign, err := newTokens(t, "some_other_secret_key_very_long_for_testing", time.Minute).IssueAccessToken(uuid.New(), "a@b.ph")
	require.NoError(t, err)

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	wrongAudience := valid()
	wrongAudience.Audience = jwt.ClaimStrings{"bidder-app"}
	noExpiry := valid()
	noExpiry.ExpiresAt = nil
	noAdmin := valid()
	noAdmin.AdminID = uuid.Nil
	noneClaims := valid()

	tests := map[string]string{
		"foreign signature": foreign,
		"expired":           sign(t, jwt.SigningMethodHS256, []byte(testSecret), &expired),
		"wrong audience":    sign(t, jwt.SigningMethodHS256, []byte(testSecret), &wrongAudience),
		"no expiry":         sign(t, jwt.SigningMethodHS256, []byte(testSecret), &noExpiry),
		"no admin":          sign(t, jwt.SigningMethodHS256, []byte(testSecret), &noAdmin),
		"none algorithm":    sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, &noneClaims),
		"garbage":           "not.a.jwt",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseAccessToken(token)
			assert.Error(t, err)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
