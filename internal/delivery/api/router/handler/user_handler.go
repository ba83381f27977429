package handler

import (
	"log/slog"
	"net/http"

	"autobid/internal/delivery/api/response"
	"autobid/internal/domain/entity"
	"autobid/internal/errors"
	"autobid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves marketplace user administration
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// ListUsers returns one page of users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	isActive, err := optionalQueryBool(c, "is_active")
	if err != nil {
		return err
	}
	isVerified, err := optionalQueryBool(c, "is_verified")
	if err != nil {
		return err
	}

	limit, offset := pagination(c)
	users, total, err := h.userUC.ListUsers(c.Request().Context(), &entity.UserFilter{
		Search:     c.QueryParam("search"),
		IsActive:   isActive,
		IsVerified: isVerified,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Page{Items: users, Total: total})
}

// GetUser returns one user.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ListRoles returns the marketplace roles.
func (h *UserHandler) ListRoles(c echo.Context) error {
	roles, err := h.userUC.ListRoles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, roles)
}

// CreateUser registers a user together with its identity.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &input)

	return response.Action(c, user, err)
}

// UpdateUser edits a user profile.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateUserInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), id, &input)

	return response.Action(c, user, err)
}

// ToggleUserFlag flips is_verified or is_active, named by the :flag path segment.
func (h *UserHandler) ToggleUserFlag(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ToggleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	flag := entity.UserFlag(c.Param("flag"))
	err = h.userUC.ToggleUserFlag(c.Request().Context(), id, flag, *req.Value)

	return response.Action(c, map[string]bool{string(flag): *req.Value}, err)
}

// DeactivateUsers soft-deletes users over a scope.
func (h *UserHandler) DeactivateUsers(c echo.Context) error {
	return h.deleteUsers(c, entity.DeleteSoft)
}

// DeleteUsers hard-deletes users over a scope. The route is restricted to super admins.
func (h *UserHandler) DeleteUsers(c echo.Context) error {
	return h.deleteUsers(c, entity.DeleteHard)
}

func (h *UserHandler) deleteUsers(c echo.Context, deleteType entity.DeleteType) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var body ScopeBody
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	result, err := h.userUC.DeleteUsers(c.Request().Context(), caller, body.toEntity(deleteType))

	return response.Action(c, result, err)
}

// ChangePassword replaces the signed-in admin's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.ChangePasswordInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	return response.Action(c, nil, h.userUC.ChangePassword(c.Request().Context(), caller, &input))
}
