package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"autobid/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// HTTPServer runs an Echo instance for the lifetime of the fx application.
type HTTPServer struct {
	name   string
	addr   string
	echo   *echo.Echo
	h2c    *http2.Server
	logger *slog.Logger
}

// NewHTTPServer binds e to port on all interfaces and registers its shutdown.
func NewHTTPServer(lc fx.Lifecycle, name string, port int, e *echo.Echo, logger *slog.Logger) *HTTPServer {
	srv := &HTTPServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		logger: logger,
	}
	lc.Append(fx.Hook{OnStop: srv.shutdown})

	return srv
}

// WithH2C serves cleartext HTTP/2 so many long-lived event streams share one
// connection behind the ingress.
func (s *HTTPServer) WithH2C(idleTimeout time.Duration) *HTTPServer {
	s.h2c = &http2.Server{IdleTimeout: idleTimeout}

	return s
}

// Serve blocks until the server is shut down.
func (s *HTTPServer) Serve(context.Context) error {
	s.logger.Info("Starting "+s.name, slog.String("host_port", s.addr))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *HTTPServer) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down " + s.name)

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
