package handler

import (
	"context"
	"time"

	"resume-forge/internal/database"
	"resume-forge/internal/infrastructure/cache"
	"resume-forge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, c *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", h.Live)
	app.Get("/health/ready", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"status": "ok"})
}

// Ready reports on the optional backends. A disabled backend counts as
// ready; only a configured backend that fails its ping flips the status.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	checks := fiber.Map{}
	healthy := true

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "unreachable"
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "disabled"
	}

	// The limiter bypasses an absent Redis, so the cache never gates
	// readiness; its state is reported for operators only.
	if h.cache != nil && h.cache.Available() {
		if err := h.cache.Ping(ctx); err != nil {
			checks["cache"] = "unreachable"
		} else {
			checks["cache"] = "ok"
		}
	} else {
		checks["cache"] = "disabled"
	}

	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "Service not ready", checks)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}
