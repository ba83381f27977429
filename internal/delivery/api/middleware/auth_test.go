package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	mockUsecase "autobid/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProtectedServer(t *testing.T, authUC *mockUsecase.MockAuthUsecase, roles ...entity.AdminRoleName) *echo.Echo {
	auth := NewAuthMiddleware(authUC)
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	chain := []echo.MiddlewareFunc{auth.Authenticate}
	if len(roles) > 0 {
		chain = append(chain, auth.RequireRole(roles...))
	}
	e.GET("/protected", func(c echo.Context) error {
		id, ok := AdminID(c)
		require.True(t, ok)

		return c.String(http.StatusOK, id.String())
	}, chain...)

	return e
}

func serve(e *echo.Echo, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	adminID := uuid.New()

	t.Run("active admin passes", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "token-1").
			Return(&entity.AdminSession{UserID: adminID, Role: entity.AdminRoleModerator}, nil)

		rec := serve(newProtectedServer(t, authUC), "/protected", "Bearer token-1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, adminID.String(), rec.Body.String())
	})

	t.Run("token in query for event streams", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "token-2").
			Return(&entity.AdminSession{UserID: adminID, Role: entity.AdminRoleModerator}, nil)

		rec := serve(newProtectedServer(t, authUC), "/protected?access_token=token-2", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := serve(newProtectedServer(t, mockUsecase.NewMockAuthUsecase(t)), "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec := serve(newProtectedServer(t, mockUsecase.NewMockAuthUsecase(t)), "/protected", "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not an admin", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "buyer").Return(nil, domainerrors.ErrNotAdmin)

		rec := serve(newProtectedServer(t, authUC), "/protected", "Bearer buyer")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_ADMIN")
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	adminID := uuid.New()

	t.Run("moderator is rejected", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "mod").
			Return(&entity.AdminSession{UserID: adminID, Role: entity.AdminRoleModerator}, nil)

		rec := serve(newProtectedServer(t, authUC, entity.AdminRoleSuperAdmin), "/protected", "Bearer mod")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("super admin passes", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "root").
			Return(&entity.AdminSession{UserID: adminID, Role: entity.AdminRoleSuperAdmin}, nil)

		rec := serve(newProtectedServer(t, authUC, entity.AdminRoleSuperAdmin), "/protected", "Bearer root")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

type recordedRequest struct {
	method, path string
	status       int
}

type fakeObserver struct {
	requests []recordedRequest
}

func (o *fakeObserver) ObserveHTTP(method, path string, status int, _ time.Duration) {
	o.requests = append(o.requests, recordedRequest{method: method, path: path, status: status})
}

func TestMetrics_ObservesRouteTemplateAndErrorStatus(t *testing.T) {
	observer := &fakeObserver{}
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.Use(Metrics(observer))
	e.GET("/listings/:id", func(c echo.Context) error {
		return domainerrors.ErrListingNotFound
	})

	rec := serve(e, "/listings/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.Len(t, observer.requests, 1)
	assert.Equal(t, recordedRequest{method: http.MethodGet, path: "/listings/:id", status: http.StatusNotFound}, observer.requests[0])
}
