package v1

import (
	"smartapplyhub/internal/config"
	"smartapplyhub/internal/database"
	"smartapplyhub/internal/delivery/http/handler"
	"smartapplyhub/internal/delivery/http/middleware"
	"smartapplyhub/internal/infrastructure/cache"
	"smartapplyhub/internal/pkg/jwt"
	"smartapplyhub/internal/repository"
	"smartapplyhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, rc *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	postingRepo := repository.NewPostgresPostingRepository(db)
	preferenceRepo := repository.NewPostgresPreferenceRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	// *cache.Redis must stay out of the interface value when nil.
	var recCache usecase.RecommendationCache
	if rc != nil {
		recCache = rc
	}

	recommendationUC := usecase.NewRecommendationUsecase(postingRepo, preferenceRepo, applicationRepo, recCache)
	preferenceUC := usecase.NewPreferenceUsecase(preferenceRepo, recCache)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, postingRepo, recCache)
	postingListUC := usecase.NewPostingListUsecase(postingRepo)

	postingHandler := handler.NewPostingHandler(postingListUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	preferenceHandler := handler.NewPreferenceHandler(preferenceUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)

	protected := r.Group("", authMw.Middleware())

	jobsGroup := protected.Group("/jobs")
	postingHandler.RegisterRoutes(jobsGroup)
	recommendationHandler.RegisterRoutes(jobsGroup)

	usersGroup := protected.Group("/users")
	preferenceHandler.RegisterRoutes(usersGroup)

	applicationHandler.RegisterRoutes(protected)
}
