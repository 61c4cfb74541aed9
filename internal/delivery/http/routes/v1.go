package routes

import (
	"resume-forge/internal/config"
	v1 "resume-forge/internal/delivery/http/routes/v1"
	"resume-forge/internal/infrastructure/cache"
	"resume-forge/internal/usecase"
	"resume-forge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the versioned API needs to assemble its handlers.
type Deps struct {
	Config    config.Config
	Generate  usecase.GenerateUsecase
	History   usecase.HistoryUsecase
	Cache     *cache.Redis
	WSHandler *ws.Handler
}

func RegisterV1(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	v1.Register(r, v1.Deps{
		Config:   deps.Config,
		Generate: deps.Generate,
		History:  deps.History,
		Cache:    deps.Cache,
	})
}
