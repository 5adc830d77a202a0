package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/messages"
	"restaurant/internal/service"
)

// MetricsHandler handles performance metric snapshots.
type MetricsHandler struct {
	metricsService service.MetricsService
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(metricsService service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

// CreateSnapshot godoc
// @Summary Compute and store a performance snapshot
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 201 {object} errors.Response{data=model.PerformanceMetrics}
// @Failure 403 {object} errors.Response
// @Router /performance-metrics [post]
func (h *MetricsHandler) CreateSnapshot(c echo.Context) error {
	snapshot, err := h.metricsService.Compute(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, messages.MetricsCreated, snapshot)
}

// LatestSnapshot godoc
// @Summary Get the newest performance snapshot
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=model.PerformanceMetrics}
// @Failure 404 {object} errors.Response
// @Router /performance-metrics [get]
func (h *MetricsHandler) LatestSnapshot(c echo.Context) error {
	snapshot, err := h.metricsService.Latest(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, messages.MetricsFetched, snapshot)
}
