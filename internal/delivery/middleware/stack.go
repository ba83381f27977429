package middleware

import (
	"log/slog"

	"autobid/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Install adds the middleware both servers share. Recovery is outermost and the
// access log runs inside RequestID so its line carries the id.
func Install(e *echo.Echo, logger *slog.Logger, cfg *config.Config) {
	e.Use(echomiddleware.Recover())
	e.Use(RequestID(logger))
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
}
