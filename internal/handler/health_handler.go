package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"restaurant/internal/cache"
	"restaurant/internal/messages"
)

// HealthHandler reports whether the service and its database are reachable.
type HealthHandler struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewHealthHandler creates a new health handler. cache may be nil.
func NewHealthHandler(db *gorm.DB, cache *cache.Client) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// HealthStatus is the health probe payload.
type HealthStatus struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// Health reports database and cache reachability. The cache is optional, so its outage
// does not fail the probe.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx := c.Request().Context()
	status := HealthStatus{Database: "ok", Cache: "ok"}
	code := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		log.Errorf("health: database: %v", err)
		status.Database = "unavailable"
		code = http.StatusInternalServerError
	}
	if err := h.cache.Ping(ctx); err != nil {
		log.Warnf("health: cache: %v", err)
		status.Cache = "unavailable"
	}

	message := messages.Success
	if code != http.StatusOK {
		message = messages.InternalServerError
	}
	return respond(c, code, message, status)
}
