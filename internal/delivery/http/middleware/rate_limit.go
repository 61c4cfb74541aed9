package middleware

import (
	"context"
	"time"

	"resume-forge/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

// RateLimitMiddleware applies a fixed per-minute window per client IP on the
// generate route. A missing or unreachable Redis bypasses the limiter so
// document generation keeps working.
type RateLimitMiddleware struct {
	cache     *cache.Redis
	perMinute int
}

func NewRateLimitMiddleware(c *cache.Redis, perMinute int) *RateLimitMiddleware {
	return &RateLimitMiddleware{cache: c, perMinute: perMinute}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.cache == nil || m.perMinute <= 0 {
			return c.Next()
		}

		key := "ratelimit:generate:" + c.IP()
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		count, err := m.cache.IncrWindow(ctx, key, time.Minute)
		if err != nil || count == 0 {
			return c.Next()
		}
		if count > int64(m.perMinute) {
			return NewAppError(fiber.StatusTooManyRequests, "Rate limit exceeded, try again shortly", nil, nil)
		}

		return c.Next()
	}
}
