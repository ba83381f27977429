package auth

import (
	"time"

	"autobid/config"
	"autobid/internal/domain/service"
	"autobid/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL = time.Hour
	tokenIssuer      = "autobid-admin"
	tokenAudience    = "autobid-admin-api"
	clockLeeway      = 30 * time.Second
)

type jwtService struct {
	secret    []byte
	accessTTL time.Duration
	parser    *jwt.Parser
}

// NewJWTService signs HS256 admin access tokens with secretKey.access.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Identity != nil && cfg.Identity.TokenTTL > 0 {
		ttl = cfg.Identity.TokenTTL
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(tokenIssuer),
			jwt.WithAudience(tokenAudience),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockLeeway),
		),
	}, nil
}

func (s *jwtService) IssueAccessToken(adminID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := &service.AccessClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   adminID.String(),
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ParseAccessToken accepts only tokens this service issued: HS256, our issuer and
// audience, unexpired, and naming an admin.
func (s *jwtService) ParseAccessToken(token string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}
	if _, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if claims.AdminID == uuid.Nil {
		return nil, errors.New("access token names no admin")
	}

	return claims, nil
}

func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
