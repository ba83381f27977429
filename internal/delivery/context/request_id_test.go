package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("echo value wins", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		SetRequestID(c, "req-1")

		assert.Equal(t, "req-1", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "req-2"))
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "req-2", GetRequestID(c))
	})

	t.Run("generates when absent", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		_, err := uuid.Parse(GetRequestID(c))
		assert.NoError(t, err)
	})
}

func TestWithAdmin(t *testing.T) {
	buf := &bytes.Buffer{}
	adminID := uuid.New()

	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(buf, nil)))
	ctx = WithAdmin(ctx, adminID)

	got, ok := AdminIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, adminID, got)

	GetLoggerOrDefault(ctx, nil).Info("listing deleted")
	assert.Contains(t, buf.String(), "admin_id="+adminID.String())

	_, ok = AdminIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, GetLogger(context.Background()))
}
