package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autobid/config"
	deliverycontext "autobid/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	mw := RequestID(logger)

	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{
			name:   "keeps client id",
			header: "req-123",
			expectID: func(t *testing.T, id string) {
				assert.Equal(t, "req-123", id)
			},
		},
		{
			name: "generates id when missing",
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name:   "replaces id with log control characters",
			header: "abc\" level=ERROR msg=\"forged",
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name:   "replaces oversized id",
			header: strings.Repeat("x", maxRequestIDLength+1),
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := mw(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			tt.expectID(t, ctxID)
			assert.Equal(t, ctxID, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		method  string
		path    string
		logged  bool
		contain string
	}{
		{name: "mutation logged without debug", method: http.MethodPost, path: "/api/v1/admin/users", logged: true, contain: "admin_id"},
		{name: "read skipped without debug", method: http.MethodGet, path: "/api/v1/admin/users"},
		{name: "read logged in debug", debug: true, method: http.MethodGet, path: "/api/v1/admin/users", logged: true},
		{name: "health never logged", debug: true, method: http.MethodGet, path: "/health"},
		{name: "stream never logged", debug: true, method: http.MethodGet, path: "/api/v1/admin/events/stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(buf, nil)), cfg)

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(deliverycontext.WithAdmin(req.Context(), uuid.New()))
			c := e.NewContext(req, httptest.NewRecorder())

			err := mw.Handle(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)

			if !tt.logged {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), "HTTP Request")
			assert.Contains(t, buf.String(), tt.contain)
		})
	}
}
