package middleware

import (
	"slices"
	"strings"

	"autobid/internal/delivery/api/response"
	deliverycontext "autobid/internal/delivery/context"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/entity"
	"autobid/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyAdminID   = "adminID"
	keyAdminRole = "adminRole"
)

// AuthMiddleware authenticates back-office requests and enforces admin roles.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the bearer token to an active admin and stores the admin on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			// EventSource cannot send headers, so streams may pass the token as a query parameter.
			if token := c.QueryParam("access_token"); token != "" {
				authHeader = "Bearer " + token
			}
		}
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		session, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(keyAdminID, session.UserID)
		c.Set(keyAdminRole, session.Role)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithAdmin(c.Request().Context(), session.UserID)))

		return next(c)
	}
}

// RequireRole only lets admins holding one of roles through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.AdminRoleName) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := AdminRole(c)
			if !ok || !slices.Contains(roles, role) {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// AdminID returns the id of the authenticated admin.
func AdminID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyAdminID).(uuid.UUID)

	return id, ok
}

// AdminRole returns the role of the authenticated admin.
func AdminRole(c echo.Context) (entity.AdminRoleName, bool) {
	role, ok := c.Get(keyAdminRole).(entity.AdminRoleName)

	return role, ok
}
