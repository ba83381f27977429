package identity

import (
	"context"
	"errors"
	"testing"

	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthClient struct {
	created   []*auth.UserToCreate
	updated   map[string]*auth.UserToUpdate
	deleted   []string
	deleteErr error
	token     *auth.Token
	verifyErr error
}

func (f *fakeAuthClient) CreateUser(_ context.Context, user *auth.UserToCreate) (*auth.UserRecord, error) {
	f.created = append(f.created, user)

	return &auth.UserRecord{}, nil
}

func (f *fakeAuthClient) UpdateUser(_ context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error) {
	if f.updated == nil {
		f.updated = map[string]*auth.UserToUpdate{}
	}
	f.updated[uid] = user

	return &auth.UserRecord{}, nil
}

func (f *fakeAuthClient) DeleteUser(_ context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)

	return f.deleteErr
}

func (f *fakeAuthClient) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.verifyErr
}

func TestFirebaseProvider_CreateIdentity(t *testing.T) {
	client := &fakeAuthClient{}
	provider := newFirebaseProvider(client)

	err := provider.CreateIdentity(context.Background(), uuid.New(), &service.NewIdentity{
		Email:       "juan@autobid.test",
		Password:    "temporary-pass",
		DisplayName: "Juan Dela Cruz",
	})
	require.NoError(t, err)
	assert.Len(t, client.created, 1)
}

func TestFirebaseProvider_UpdateIdentitySkipsEmptyUpdate(t *testing.T) {
	client := &fakeAuthClient{}
	provider := newFirebaseProvider(client)
	id := uuid.New()

	require.NoError(t, provider.UpdateIdentity(context.Background(), id, &service.IdentityUpdate{}))
	assert.Empty(t, client.updated)

	verified := true
	require.NoError(t, provider.UpdateIdentity(context.Background(), id, &service.IdentityUpdate{EmailVerified: &verified}))
	assert.Contains(t, client.updated, id.String())
}

func TestFirebaseProvider_DeleteIdentityFailure(t *testing.T) {
	client := &fakeAuthClient{deleteErr: errors.New("backend unavailable")}
	provider := newFirebaseProvider(client)

	err := provider.DeleteIdentity(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrIdentityFailed)
}

func TestFirebaseProvider_VerifyToken(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		client  *fakeAuthClient
		want    uuid.UUID
		wantErr bool
	}{
		{
			name:   "valid token",
			client: &fakeAuthClient{token: &auth.Token{UID: userID.String()}},
			want:   userID,
		},
		{
			name:    "rejected token",
			client:  &fakeAuthClient{verifyErr: errors.New("expired")},
			wantErr: true,
		},
		{
			name:    "uid is not a uuid",
			client:  &fakeAuthClient{token: &auth.Token{UID: "firebase-generated-uid"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newFirebaseProvider(tt.client).VerifyToken(context.Background(), "token")
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
