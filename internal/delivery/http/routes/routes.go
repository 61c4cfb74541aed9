package routes

import (
	"resume-forge/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	deps   Deps
}

func NewRegistry(health *handler.HealthHandler, deps Deps) *Registry {
	return &Registry{health: health, deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.deps.WSHandler == nil {
		return
	}
	app.Get("/ws", r.deps.WSHandler.HandleEventsWS)
}
