package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"autobid/internal/delivery/api/validator"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func handleError(t *testing.T, err error) (int, domainerrors.ErrorResponse) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Run("wrapped domain error", func(t *testing.T) {
		status, body := handleError(t, errors.Wrap(domainerrors.ErrLocationInUse, "failed to delete location"))
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "LOCATION_IN_USE", body.Error.Code)
		assert.Equal(t, "Failed to delete: may have child records", body.Error.Message)
	})

	t.Run("database error hides details", func(t *testing.T) {
		status, body := handleError(t, domainerrors.NewDatabaseExecuteError(errors.New("pq: deadlock"), "select users"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", body.Error.Code)
		assert.Nil(t, body.Error.Details)
	})

	t.Run("validation errors list fields", func(t *testing.T) {
		type form struct {
			Email string `json:"email" validate:"required,email"`
		}
		status, body := handleError(t, validator.New().Validate(&form{Email: "nope"}))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, map[string]any{"email": "email"}, body.Error.Details)
	})

	t.Run("echo http error", func(t *testing.T) {
		status, body := handleError(t, echo.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	})

	t.Run("unknown error", func(t *testing.T) {
		status, body := handleError(t, errors.New("nil pointer"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "nil pointer")
	})
}
