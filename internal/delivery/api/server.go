// Package api serves the admin REST API and its event streams.
package api

import (
	"log/slog"

	"autobid/config"
	"autobid/internal/delivery"
	apimiddleware "autobid/internal/delivery/api/middleware"
	"autobid/internal/delivery/api/router"
	"autobid/internal/delivery/api/validator"
	deliverycontext "autobid/internal/delivery/context"
	"autobid/internal/delivery/middleware"
	"autobid/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics `optional:"true"`
	ErrorHandler *apimiddleware.ErrorMiddleware
	RouterParams router.RouterParams
}

// NewServer assembles the admin API. http.timeouts.writeTimeout must stay zero
// while event streams are served, or the server cuts them off.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout
	e.HTTPErrorHandler = params.ErrorHandler.HandleHTTPError
	e.Validator = validator.New()

	middleware.Install(e, params.Logger, params.Cfg)
	// Metrics sits inside the access log and observes the status the error handler wrote.
	if params.Metrics != nil && metricsEnabled(params.Cfg) {
		e.Use(apimiddleware.Metrics(params.Metrics))
		e.GET("/metrics", echo.WrapHandler(params.Metrics.Handler()))
	}
	e.Use(echomiddleware.CORSWithConfig(corsConfig(params.Cfg)))
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return delivery.NewHTTPServer(params.Lc, "admin API server", params.Cfg.HTTP.Port, e, params.Logger).
		WithH2C(params.Cfg.HTTP.Timeouts.IdleTimeout), nil
}

func metricsEnabled(cfg *config.Config) bool {
	return cfg.Metrics == nil || cfg.Metrics.Enabled
}

// corsConfig admits the configured admin frontends, or any origin when none are set.
func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	corsCfg := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.ExposeHeaders = []string{deliverycontext.HeaderXRequestID}

	return corsCfg
}
