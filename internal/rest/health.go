package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	name    string
	version string
	db      Pinger
}

func NewHealthHandler(name, version string, db Pinger) *HealthHandler {
	return &HealthHandler{
		name:    name,
		version: version,
		db:      db,
	}
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Welcome to " + h.name + " API",
		"version": h.version,
	})
}

func (h *HealthHandler) Health(c echo.Context) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":   "unhealthy",
				"database": err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
