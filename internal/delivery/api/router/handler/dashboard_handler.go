package handler

import (
	"net/http"

	"autobid/internal/delivery/api/response"
	"autobid/internal/errors"
	"autobid/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the admin home counters
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// GetStats returns the dashboard counters.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.dashboardUC.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}
