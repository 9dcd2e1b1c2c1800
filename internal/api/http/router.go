package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vet-clinic-service/internal/api/http/handlers"
	"github.com/spec-kit/vet-clinic-service/internal/auth"
	"github.com/spec-kit/vet-clinic-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Identity       *handlers.IdentityHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Snapshot)
	}

	api := app.Group("/api")
	api.Get("/public/greeting", cfg.AuthMiddleware.Optional(), cfg.Identity.Greeting)

	required := cfg.AuthMiddleware.Required()
	api.Get("/me", required, auth.RequireAnyRole(), cfg.Identity.Me)
	api.Get("/users/:id/profile", required, auth.RequireOwnership("id"), cfg.Identity.Profile)
	api.Get("/admin/principals/:id", required, auth.Authorize(domain.RoleAdmin), cfg.Identity.Lookup)
}
