package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "autobid/internal/delivery/context"
	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	"autobid/internal/domain/service"
	"autobid/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	identity      service.IdentityProvider
	authenticator service.CredentialAuthenticator
	tokens        service.TokenService
	adminRepo     repository.AdminRepository
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	IdentityProvider service.IdentityProvider
	Authenticator    service.CredentialAuthenticator `optional:"true"`
	TokenService     service.TokenService
	AdminRepo        repository.AdminRepository
	Logger           *slog.Logger
}

// NewAuthService creates a new admin authentication service.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		identity:      params.IdentityProvider,
		authenticator: params.Authenticator,
		tokens:        params.TokenService,
		adminRepo:     params.AdminRepo,
		logger:        params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate resolves a bearer token to an active admin.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.AdminSession, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	userID, err := srv.identity.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	admin, err := srv.adminRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve admin")
	}

	return &entity.AdminSession{UserID: admin.UserID, Role: admin.Role}, nil
}

// Login exchanges credentials for an access token. Only admins may sign in.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginResult, error) {
	if srv.authenticator == nil {
		return nil, domainerrors.ErrIdentityUnsupported.WrapMessage("password sign-in is not available")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	token, userID, err := srv.authenticator.SignIn(ctx, email, input.Password)
	if err != nil {
		srv.log(ctx).Info("Sign-in rejected", slog.String("email", email))

		return nil, errors.Wrap(err, "failed to sign in")
	}

	if _, err := srv.adminRepo.FindActiveByUserID(ctx, userID); err != nil {
		srv.log(ctx).Warn("Sign-in by non-admin user", slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to resolve admin")
	}

	srv.log(ctx).Info("Admin signed in", slog.Any("userID", userID))

	return &usecase.LoginResult{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokens.AccessTokenTTL().Seconds()),
		UserID:      userID,
	}, nil
}
