package impl

import (
	"context"
	"errors"
	"testing"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	"autobid/internal/domain/service"
	mockRepo "autobid/internal/mocks/repository"
	mockService "autobid/internal/mocks/service"
	"autobid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	srv       usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	identity  *mockService.MockIdentityProvider
}

func newUserFixture(t *testing.T) *userFixture {
	f := &userFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		identity:  mockService.NewMockIdentityProvider(t),
	}
	f.srv = NewUserService(UserServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		IdentityProvider: f.identity,
		Publisher:        newPublisher(t),
		Metrics:          newMetrics(t),
		Logger:           newDiscardLogger(),
	})

	return f
}

func (f *userFixture) runInTx(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(f.userRepo)
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestUserService_CreateUser_Success(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()
	middle := "Santos"

	var identityID uuid.UUID
	f.identity.EXPECT().
		CreateIdentity(ctx, mock.AnythingOfType("uuid.UUID"), mock.MatchedBy(func(identity *service.NewIdentity) bool {
			return identity.Email == "juan@autobid.test" &&
				len(identity.Password) == temporaryPasswordLength &&
				identity.DisplayName == "Juan Santos Dela Cruz" &&
				identity.EmailVerified
		})).
		RunAndReturn(func(_ context.Context, id uuid.UUID, _ *service.NewIdentity) error {
			identityID = id

			return nil
		})
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := f.srv.CreateUser(ctx, &usecase.CreateUserInput{
		Email:      " Juan@AutoBid.test ",
		FirstName:  "Juan",
		MiddleName: &middle,
		LastName:   "Dela Cruz",
		IsVerified: true,
	})
	require.NoError(t, err)
	assert.Equal(t, identityID, user.ID, "the user row reuses the identity id")
	assert.Equal(t, "Juan Santos Dela Cruz", user.DisplayName)
	assert.Equal(t, user.DisplayName, user.FullName)
	assert.True(t, user.IsActive)
}

func TestUserService_CreateUser_CompensatesIdentity(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	var identityID uuid.UUID
	f.identity.EXPECT().
		CreateIdentity(ctx, mock.AnythingOfType("uuid.UUID"), mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID, _ *service.NewIdentity) error {
			identityID = id

			return nil
		})
	f.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)
	f.identity.EXPECT().
		DeleteIdentity(ctx, mock.AnythingOfType("uuid.UUID")).
		Run(func(_ context.Context, id uuid.UUID) {
			assert.Equal(t, identityID, id)
		}).
		Return(nil)

	_, err := f.srv.CreateUser(ctx, &usecase.CreateUserInput{
		Email:     "dup@autobid.test",
		Password:  "s3cret-pass",
		FirstName: "Dup",
		LastName:  "User",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_CreateUser_IdentityFails(t *testing.T) {
	f := newUserFixture(t)
	ctx := context.Background()

	f.identity.EXPECT().CreateIdentity(ctx, mock.Anything, mock.Anything).Return(domainerrors.ErrIdentityFailed)

	_, err := f.srv.CreateUser(ctx, &usecase.CreateUserInput{Email: "a@b.test", FirstName: "A", LastName: "B"})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityFailed)
}

func TestUserService_UpdateUser_RecomputesDisplayName(t *testing.T) {
	f := newUserFixture(t)
	f.runInTx(t)
	ctx := context.Background()
	id := uuid.New()
	verified := true
	last := "Reyes"

	f.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, FirstName: "Maria", LastName: "Cruz"}, nil)
	f.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.DisplayName == "Maria Reyes" && user.FullName == "Maria Reyes"
		})).
		Return(nil)
	f.userRepo.EXPECT().SetFlag(ctx, id, entity.UserFlagVerified, true).Return(nil)
	f.identity.EXPECT().
		UpdateIdentity(ctx, id, mock.MatchedBy(func(update *service.IdentityUpdate) bool {
			return update.DisplayName != nil && *update.DisplayName == "Maria Reyes" &&
				update.EmailVerified != nil && *update.EmailVerified
		})).
		Return(errors.New("identity service unavailable"))

	user, err := f.srv.UpdateUser(ctx, id, &usecase.UpdateUserInput{LastName: &last, IsVerified: &verified})
	require.NoError(t, err, "identity sync failures are only logged")
	assert.Equal(t, "Maria Reyes", user.DisplayName)
	assert.True(t, user.IsVerified)
}

func TestUserService_ToggleUserFlag(t *testing.T) {
	ctx := context.Background()

	t.Run("verified syncs identity", func(t *testing.T) {
		f := newUserFixture(t)
		id := uuid.New()

		f.userRepo.EXPECT().SetFlag(ctx, id, entity.UserFlagVerified, true).Return(nil)
		f.identity.EXPECT().
			UpdateIdentity(ctx, id, mock.MatchedBy(func(update *service.IdentityUpdate) bool {
				return update.EmailVerified != nil && *update.EmailVerified && update.DisplayName == nil
			})).
			Return(nil)

		require.NoError(t, f.srv.ToggleUserFlag(ctx, id, entity.UserFlagVerified, true))
	})

	t.Run("active does not touch identity", func(t *testing.T) {
		f := newUserFixture(t)
		id := uuid.New()

		f.userRepo.EXPECT().SetFlag(ctx, id, entity.UserFlagActive, false).Return(nil)

		require.NoError(t, f.srv.ToggleUserFlag(ctx, id, entity.UserFlagActive, false))
	})

	t.Run("unknown flag", func(t *testing.T) {
		f := newUserFixture(t)

		err := f.srv.ToggleUserFlag(ctx, uuid.New(), "is_admin", true)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_DeleteUsers_SelfProtection(t *testing.T) {
	ctx := context.Background()
	caller := uuid.New()

	t.Run("single on self", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.srv.DeleteUsers(ctx, caller, entity.DeleteRequest{Scope: entity.ScopeSingle, Type: entity.DeleteHard, IDs: []uuid.UUID{caller}})
		assert.ErrorIs(t, err, domainerrors.ErrSelfDeletion)
	})

	t.Run("selected only self", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.srv.DeleteUsers(ctx, caller, entity.DeleteRequest{Scope: entity.ScopeSelected, Type: entity.DeleteSoft, IDs: []uuid.UUID{caller, caller}})
		assert.ErrorIs(t, err, domainerrors.ErrNoUsersToDelete)
	})

	t.Run("selected drops self", func(t *testing.T) {
		f := newUserFixture(t)
		other := uuid.New()

		f.userRepo.EXPECT().SetActiveByIDs(ctx, []uuid.UUID{other}, false).Return(int64(1), nil)

		result, err := f.srv.DeleteUsers(ctx, caller, entity.DeleteRequest{Scope: entity.ScopeSelected, Type: entity.DeleteSoft, IDs: []uuid.UUID{caller, other}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Affected)
	})

	t.Run("all with nobody else", func(t *testing.T) {
		f := newUserFixture(t)

		f.userRepo.EXPECT().ListIDsExcept(ctx, caller).Return([]uuid.UUID{}, nil)

		_, err := f.srv.DeleteUsers(ctx, caller, entity.DeleteRequest{Scope: entity.ScopeAll, Type: entity.DeleteHard})
		assert.ErrorIs(t, err, domainerrors.ErrNoUsersToDelete)
	})
}

func TestUserService_DeleteUsers_ClearFailureIsSwallowed(t *testing.T) {
	f := newUserFixture(t)
	f.runInTx(t)
	ctx := context.Background()
	caller, target := uuid.New(), uuid.New()

	for i, ref := range entity.DanglingUserReferences {
		if i == 0 {
			f.userRepo.EXPECT().ClearReference(ctx, ref, []uuid.UUID{target}).Return(int64(0), errors.New("relation does not exist"))

			continue
		}
		f.userRepo.EXPECT().ClearReference(ctx, ref, []uuid.UUID{target}).Return(int64(1), nil)
	}
	f.userRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{target}).Return(int64(1), nil)
	f.identity.EXPECT().DeleteIdentity(ctx, target).Return(nil)

	result, err := f.srv.DeleteUsers(ctx, caller, entity.DeleteRequest{Scope: entity.ScopeSingle, Type: entity.DeleteHard, IDs: []uuid.UUID{target}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Affected)
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("mismatch", func(t *testing.T) {
		f := newUserFixture(t)

		err := f.srv.ChangePassword(ctx, uuid.New(), &usecase.ChangePasswordInput{Password: "abcdefgh", ConfirmPassword: "abcdefgi"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("updates identity", func(t *testing.T) {
		f := newUserFixture(t)
		id := uuid.New()

		f.identity.EXPECT().
			UpdateIdentity(ctx, id, mock.MatchedBy(func(update *service.IdentityUpdate) bool {
				return update.Password != nil && *update.Password == "n3w-passw0rd"
			})).
			Return(nil)

		require.NoError(t, f.srv.ChangePassword(ctx, id, &usecase.ChangePasswordInput{Password: "n3w-passw0rd", ConfirmPassword: "n3w-passw0rd"}))
	})
}
