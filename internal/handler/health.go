package handler

import (
	"context"
	"time"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB and *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the database and cache are reachable
type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

// NewHealthHandler creates a HealthHandler. cache may be nil when caching is disabled.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Check responds 200 when every dependency answers a ping and 503 otherwise.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Components: map[string]string{}}

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Error("Database health check failed", zap.Error(err))
		resp.Status = "unavailable"
		resp.Components["database"] = "down"
	} else {
		resp.Components["database"] = "up"
	}

	switch {
	case h.cache == nil:
		resp.Components["cache"] = "disabled"
	case h.cache.Ping(ctx) != nil:
		logger.Get().Warn("Cache health check failed")
		resp.Status = "unavailable"
		resp.Components["cache"] = "down"
	default:
		resp.Components["cache"] = "up"
	}

	if resp.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
