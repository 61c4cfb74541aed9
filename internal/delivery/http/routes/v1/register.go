package v1

import (
	"resume-forge/internal/config"
	"resume-forge/internal/delivery/http/handler"
	"resume-forge/internal/delivery/http/middleware"
	"resume-forge/internal/infrastructure/cache"
	"resume-forge/internal/pkg/jwt"
	"resume-forge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config   config.Config
	Generate usecase.GenerateUsecase
	History  usecase.HistoryUsecase
	Cache    *cache.Redis
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	resumeHandler := handler.NewResumeHandler(deps.Generate, deps.History)

	grp := r.Group("")

	// Auth is opt-in: routes stay public until a JWT secret is configured.
	if secret := deps.Config.Auth.JWTSecret; secret != "" {
		authMw := middleware.NewAuthMiddleware(jwt.NewHMACService(secret))
		grp = grp.Group("", authMw.Middleware())
	}

	if limit := deps.Config.RateLimit.PerMinute; limit > 0 {
		rlMw := middleware.NewRateLimitMiddleware(deps.Cache, limit)
		grp = grp.Group("", rlMw.Middleware())
	}

	resumeHandler.RegisterRoutes(grp)
}
