package identity

import (
	"context"
	"strings"

	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/entity"
	"autobid/internal/domain/repository"
	"autobid/internal/domain/service"
	"autobid/internal/errors"

	"github.com/google/uuid"
)

// localProvider keeps identities in the auth_identities table and issues its own JWTs.
type localProvider struct {
	repo   repository.IdentityRepository
	hasher service.PasswordHasher
	tokens service.TokenService
}

// LocalProvider is an IdentityProvider that can also sign users in.
type LocalProvider interface {
	service.IdentityProvider
	service.CredentialAuthenticator
}

// NewLocalProvider creates the database-backed identity provider.
func NewLocalProvider(repo repository.IdentityRepository, hasher service.PasswordHasher, tokens service.TokenService) LocalProvider {
	return &localProvider{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

func (p *localProvider) CreateIdentity(ctx context.Context, id uuid.UUID, identity *service.NewIdentity) error {
	hash, err := p.hasher.Hash(identity.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return p.repo.Create(ctx, &entity.Identity{
		ID:            id,
		Email:         strings.ToLower(strings.TrimSpace(identity.Email)),
		PasswordHash:  hash,
		DisplayName:   identity.DisplayName,
		EmailVerified: identity.EmailVerified,
	})
}

func (p *localProvider) UpdateIdentity(ctx context.Context, id uuid.UUID, update *service.IdentityUpdate) error {
	current, err := p.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if update.DisplayName != nil {
		current.DisplayName = *update.DisplayName
	}
	if update.EmailVerified != nil {
		current.EmailVerified = *update.EmailVerified
	}
	if update.Password != nil {
		hash, hashErr := p.hasher.Hash(*update.Password)
		if hashErr != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(hashErr.Error())
		}
		current.PasswordHash = hash
	}

	return p.repo.Update(ctx, current)
}

func (p *localProvider) DeleteIdentity(ctx context.Context, id uuid.UUID) error {
	return p.repo.Delete(ctx, id)
}

func (p *localProvider) VerifyToken(_ context.Context, token string) (uuid.UUID, error) {
	claims, err := p.tokens.ParseAccessToken(token)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	return claims.AdminID, nil
}

// SignIn checks the password and issues an access token.
func (p *localProvider) SignIn(ctx context.Context, email, password string) (string, uuid.UUID, error) {
	identity, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", uuid.Nil, err
	}
	if identity.Disabled || !p.hasher.Verify(password, identity.PasswordHash) {
		return "", uuid.Nil, domainerrors.ErrInvalidCredentials
	}
	p.upgradeHash(ctx, identity, password)

	token, err := p.tokens.IssueAccessToken(identity.ID, identity.Email)
	if err != nil {
		return "", uuid.Nil, errors.Wrap(err, "failed to issue access token")
	}

	return token, identity.ID, nil
}

// upgradeHash rehashes a password stored under an older bcrypt cost. Sign-in does
// not depend on it; a failed upgrade is retried on the next sign-in.
func (p *localProvider) upgradeHash(ctx context.Context, identity *entity.Identity, password string) {
	if !p.hasher.NeedsRehash(identity.PasswordHash) {
		return
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return
	}
	identity.PasswordHash = hash
	_ = p.repo.Update(ctx, identity)
}
