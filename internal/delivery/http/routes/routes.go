package routes

import (
	"smartapplyhub/internal/config"
	"smartapplyhub/internal/database"
	"smartapplyhub/internal/delivery/http/handler"
	"smartapplyhub/internal/delivery/http/routes/v1"
	"smartapplyhub/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, rc *cache.Redis) *Registry {
	return &Registry{cfg: cfg, db: db, cache: rc, health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache)
}
