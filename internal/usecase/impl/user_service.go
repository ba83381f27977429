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
	"autobid/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const temporaryPasswordLength = 16

// userService implements the UserUsecase interface.
type userService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	identity    service.IdentityProvider
	metrics     service.MetricsRecorder
	invalidator *invalidator
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	IdentityProvider service.IdentityProvider
	Publisher        service.EventPublisher
	Metrics          service.MetricsRecorder
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		identity:    params.IdentityProvider,
		metrics:     params.Metrics,
		invalidator: &invalidator{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns one page of users.
func (srv *userService) ListUsers(ctx context.Context, filter *entity.UserFilter) ([]*entity.User, int64, error) {
	users, total, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	return users, total, nil
}

// GetUser returns a single user.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// ListRoles returns the marketplace roles.
func (srv *userService) ListRoles(ctx context.Context) ([]*entity.UserRole, error) {
	roles, err := srv.userRepo.ListRoles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

// CreateUser registers the identity under a fresh id and then inserts the row.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := input.Password
	if password == "" {
		generated, err := util.GeneratePassword(temporaryPasswordLength)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate temporary password")
		}
		password = generated
	}

	displayName := entity.ComposeDisplayName(input.FirstName, input.MiddleName, input.LastName)
	user := &entity.User{
		ID:          uuid.New(),
		Email:       email,
		Username:    input.Username,
		FullName:    displayName,
		DisplayName: displayName,
		FirstName:   strings.TrimSpace(input.FirstName),
		MiddleName:  input.MiddleName,
		LastName:    strings.TrimSpace(input.LastName),
		Sex:         input.Sex,
		RoleID:      input.RoleID,
		IsVerified:  input.IsVerified,
		IsActive:    boolOr(input.IsActive, true),
	}

	err := srv.identity.CreateIdentity(ctx, user.ID, &service.NewIdentity{
		Email:         email,
		Password:      password,
		DisplayName:   displayName,
		EmailVerified: input.IsVerified,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity")
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if delErr := srv.identity.DeleteIdentity(ctx, user.ID); delErr != nil {
			srv.log(ctx).Error("Failed to roll back identity after user insert failed",
				slog.Any("userID", user.ID),
				slog.Any("error", delErr),
			)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Any("userID", user.ID), slog.String("email", email))
	srv.invalidator.publish(ctx, "user created", entity.ViewUsers, entity.ViewDashboard)

	return user, nil
}

// UpdateUser applies the non-nil fields and keeps the identity in sync.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	var updated *entity.User
	nameChanged := input.FirstName != nil || input.MiddleName != nil || input.LastName != nil

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		applyUserUpdate(user, input)
		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}
		if input.IsVerified != nil {
			if err := userRepo.SetFlag(ctx, id, entity.UserFlagVerified, *input.IsVerified); err != nil {
				return err
			}
			user.IsVerified = *input.IsVerified
		}
		if input.IsActive != nil {
			if err := userRepo.SetFlag(ctx, id, entity.UserFlagActive, *input.IsActive); err != nil {
				return err
			}
			user.IsActive = *input.IsActive
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	if nameChanged || input.IsVerified != nil {
		sync := &service.IdentityUpdate{EmailVerified: input.IsVerified}
		if nameChanged {
			sync.DisplayName = &updated.DisplayName
		}
		srv.syncIdentity(ctx, id, sync)
	}

	srv.invalidator.publish(ctx, "user updated", entity.ViewUsers)

	return updated, nil
}

func applyUserUpdate(user *entity.User, input *usecase.UpdateUserInput) {
	if input.Username != nil {
		user.Username = input.Username
	}
	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.MiddleName != nil {
		user.MiddleName = input.MiddleName
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Sex != nil {
		user.Sex = input.Sex
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.RoleID != nil {
		user.RoleID = input.RoleID
	}

	if input.FirstName != nil || input.MiddleName != nil || input.LastName != nil {
		user.DisplayName = entity.ComposeDisplayName(user.FirstName, user.MiddleName, user.LastName)
		user.FullName = user.DisplayName
	}
}

// syncIdentity mirrors profile changes onto the identity. The users row stays authoritative.
func (srv *userService) syncIdentity(ctx context.Context, id uuid.UUID, update *service.IdentityUpdate) {
	if err := srv.identity.UpdateIdentity(ctx, id, update); err != nil {
		srv.log(ctx).Warn("Failed to sync identity", slog.Any("userID", id), slog.Any("error", err))
	}
}

// ToggleUserFlag writes is_verified or is_active.
func (srv *userService) ToggleUserFlag(ctx context.Context, id uuid.UUID, flag entity.UserFlag, value bool) error {
	if !flag.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown user flag " + string(flag))
	}

	if err := srv.userRepo.SetFlag(ctx, id, flag, value); err != nil {
		return errors.Wrap(err, "failed to toggle user flag")
	}

	if flag == entity.UserFlagVerified {
		srv.syncIdentity(ctx, id, &service.IdentityUpdate{EmailVerified: &value})
	}

	srv.log(ctx).Info("User flag toggled", slog.Any("userID", id), slog.String("flag", string(flag)), slog.Bool("value", value))
	srv.invalidator.publish(ctx, "user flag toggled", entity.ViewUsers, entity.ViewDashboard)

	return nil
}

// DeleteUsers deactivates or removes users. The caller is never part of the target set.
func (srv *userService) DeleteUsers(ctx context.Context, callerID uuid.UUID, req entity.DeleteRequest) (*usecase.LifecycleResult, error) {
	affected, err := srv.deleteUsers(ctx, callerID, req)
	srv.metrics.RecordLifecycle("users", req, err)
	if err != nil {
		srv.log(ctx).Warn("User delete failed",
			slog.String("scope", string(req.Scope)),
			slog.String("type", string(req.Type)),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Users deleted",
		slog.String("scope", string(req.Scope)),
		slog.String("type", string(req.Type)),
		slog.Int64("affected", affected),
	)
	srv.invalidator.publish(ctx, "users deleted", entity.ViewUsers, entity.ViewDashboard)

	return &usecase.LifecycleResult{Affected: affected}, nil
}

func (srv *userService) deleteUsers(ctx context.Context, callerID uuid.UUID, req entity.DeleteRequest) (int64, error) {
	if err := validateDeleteRequest(req); err != nil {
		return 0, err
	}

	targets, err := srv.resolveTargets(ctx, callerID, req)
	if err != nil {
		return 0, err
	}

	if req.Type == entity.DeleteSoft {
		if req.IsAll() {
			return srv.userRepo.DeactivateAllExcept(ctx, callerID)
		}

		return srv.userRepo.SetActiveByIDs(ctx, targets, false)
	}

	return srv.hardDeleteUsers(ctx, targets)
}

func (srv *userService) resolveTargets(ctx context.Context, callerID uuid.UUID, req entity.DeleteRequest) ([]uuid.UUID, error) {
	var targets []uuid.UUID

	switch req.Scope {
	case entity.ScopeSingle:
		if req.IDs[0] == callerID {
			return nil, domainerrors.ErrSelfDeletion
		}
		targets = req.IDs
	case entity.ScopeSelected:
		for _, id := range uniqueIDs(req.IDs) {
			if id != callerID {
				targets = append(targets, id)
			}
		}
	case entity.ScopeAll:
		ids, err := srv.userRepo.ListIDsExcept(ctx, callerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list users")
		}
		targets = ids
	}

	if len(targets) == 0 {
		return nil, domainerrors.ErrNoUsersToDelete
	}

	return targets, nil
}

// hardDeleteUsers clears the references that would block the delete, removes the
// rows in one transaction and then drops the identities.
func (srv *userService) hardDeleteUsers(ctx context.Context, targets []uuid.UUID) (int64, error) {
	var affected int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		for _, ref := range entity.DanglingUserReferences {
			cleared, err := userRepo.ClearReference(ctx, ref, targets)
			if err != nil {
				srv.log(ctx).Warn("Failed to clear user reference",
					slog.String("table", ref.Table),
					slog.String("column", ref.Column),
					slog.Any("error", err),
				)

				continue
			}
			srv.log(ctx).Debug("Cleared user reference",
				slog.String("table", ref.Table),
				slog.String("column", ref.Column),
				slog.Int64("rows", cleared),
			)
		}

		deleted, err := userRepo.DeleteByIDs(ctx, targets)
		if err != nil {
			return err
		}
		affected = deleted

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete users")
	}

	for _, id := range targets {
		if err := srv.identity.DeleteIdentity(ctx, id); err != nil {
			srv.log(ctx).Warn("Failed to delete identity", slog.Any("userID", id), slog.Any("error", err))
		}
	}

	return affected, nil
}

// ChangePassword replaces the password of the caller's identity.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if input.Password != input.ConfirmPassword {
		return domainerrors.ErrValidationFailed.WrapMessage("passwords do not match")
	}

	password := input.Password
	if err := srv.identity.UpdateIdentity(ctx, userID, &service.IdentityUpdate{Password: &password}); err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}
