package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-seed-api/internal/api/handler/router"
	"github.com/vfg2006/dashboard-seed-api/internal/config"
	"github.com/vfg2006/dashboard-seed-api/internal/usecases/seeding"
	"github.com/vfg2006/dashboard-seed-api/pkg/middleware"
)

func Healthcheck(db DatabasePinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// Seed retorna as rotas de seed. Com AUTH_SECRET definido elas exigem token de administrador.
func Seed(seeder seeding.Seeder, status SeedStatusProvider, cfg *config.Config) []router.Route {
	var guards []func(http.Handler) http.Handler
	if cfg.Auth.Secret != "" {
		guards = []func(http.Handler) http.Handler{
			middleware.AuthMiddleware(cfg.Auth.Secret),
			middleware.AdminOnly(),
		}
	}

	return []router.Route{
		{
			Path:        "/seed",
			Method:      http.MethodGet,
			Handler:     SeedDatabase(seeder, cfg.Seed.ExposeErrorDetails),
			Middlewares: guards,
		},
		{
			Path:        "/seed/status",
			Method:      http.MethodGet,
			Handler:     GetSeedStatus(status),
			Middlewares: guards,
		},
	}
}
