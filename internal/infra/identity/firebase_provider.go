// Package identity implements the authentication identity gateway.
package identity

import (
	"context"

	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// authClient is the subset of the Firebase Auth client the provider uses.
type authClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseProvider struct {
	client authClient
}

// NewFirebaseProvider initialises a Firebase app and returns its Auth client as an IdentityProvider.
func NewFirebaseProvider(ctx context.Context, projectID, credentialsPath string) (service.IdentityProvider, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return newFirebaseProvider(client), nil
}

func newFirebaseProvider(client authClient) *firebaseProvider {
	return &firebaseProvider{client: client}
}

// CreateIdentity registers a Firebase user whose uid is the users.id.
func (p *firebaseProvider) CreateIdentity(ctx context.Context, id uuid.UUID, identity *service.NewIdentity) error {
	params := (&auth.UserToCreate{}).
		UID(id.String()).
		Email(identity.Email).
		Password(identity.Password).
		EmailVerified(identity.EmailVerified)
	if identity.DisplayName != "" {
		params = params.DisplayName(identity.DisplayName)
	}

	if _, err := p.client.CreateUser(ctx, params); err != nil {
		return domainerrors.ErrIdentityFailed.WrapMessage(err.Error())
	}

	return nil
}

// UpdateIdentity applies the non-nil fields of update.
func (p *firebaseProvider) UpdateIdentity(ctx context.Context, id uuid.UUID, update *service.IdentityUpdate) error {
	params := &auth.UserToUpdate{}
	changed := false
	if update.DisplayName != nil {
		params = params.DisplayName(*update.DisplayName)
		changed = true
	}
	if update.EmailVerified != nil {
		params = params.EmailVerified(*update.EmailVerified)
		changed = true
	}
	if update.Password != nil {
		params = params.Password(*update.Password)
		changed = true
	}
	if !changed {
		return nil
	}

	if _, err := p.client.UpdateUser(ctx, id.String(), params); err != nil {
		return domainerrors.ErrIdentityFailed.WrapMessage(err.Error())
	}

	return nil
}

// DeleteIdentity removes the Firebase user. A missing user counts as deleted.
func (p *firebaseProvider) DeleteIdentity(ctx context.Context, id uuid.UUID) error {
	if err := p.client.DeleteUser(ctx, id.String()); err != nil {
		if auth.IsUserNotFound(err) {
			return nil
		}

		return domainerrors.ErrIdentityFailed.WrapMessage(err.Error())
	}

	return nil
}

// VerifyToken checks a Firebase ID token and returns its uid as a user id.
func (p *firebaseProvider) VerifyToken(ctx context.Context, token string) (uuid.UUID, error) {
	verified, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	userID, err := uuid.Parse(verified.UID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("token subject is not a user id")
	}

	return userID, nil
}
