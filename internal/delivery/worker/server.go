// Package worker serves the Pub/Sub push endpoint that feeds the live event hub.
package worker

import (
	"log/slog"
	"net/http"

	"autobid/config"
	"autobid/internal/delivery"
	"autobid/internal/delivery/middleware"
	"autobid/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// pushBodyLimit is well above the largest bid or invalidation envelope.
const pushBodyLimit = "1M"

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the push receiver on worker.port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	middleware.Install(e, params.Logger, params.Cfg)
	e.Use(echomiddleware.BodyLimit(pushBodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	return delivery.NewHTTPServer(params.Lc, "push worker server", params.Cfg.Worker.Port, e, params.Logger), nil
}
