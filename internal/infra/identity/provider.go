package identity

import (
	"context"
	"log/slog"

	"autobid/config"
	"autobid/internal/domain/constants"
	"autobid/internal/domain/repository"
	"autobid/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the identity gateway, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx          context.Context
	Config       *config.Config
	Logger       *slog.Logger
	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	Tokens       service.TokenService
}

// ProviderResult exposes the gateway. Authenticator is nil unless the provider supports password sign-in.
type ProviderResult struct {
	fx.Out

	Provider      service.IdentityProvider
	Authenticator service.CredentialAuthenticator
}

// NewIdentityProvider selects the identity gateway named by identity.provider.
func NewIdentityProvider(params ProviderParams) (ProviderResult, error) {
	cfg := params.Config.Identity
	providerName := constants.IdentityProviderLocal
	if cfg != nil && cfg.Provider != "" {
		providerName = cfg.Provider
	}

	switch providerName {
	case constants.IdentityProviderLocal:
		params.Logger.Info("Using local identity provider")
		local := NewLocalProvider(params.IdentityRepo, params.Hasher, params.Tokens)

		return ProviderResult{Provider: local, Authenticator: local}, nil

	case constants.IdentityProviderFirebase:
		params.Logger.Info("Using Firebase identity provider", slog.String("project_id", cfg.ProjectID))
		provider, err := NewFirebaseProvider(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
		if err != nil {
			return ProviderResult{}, err
		}

		return ProviderResult{Provider: provider}, nil

	default:
		return ProviderResult{}, errors.Errorf("unknown identity provider: %s", providerName)
	}
}

// Module provides the identity gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityProvider),
)
