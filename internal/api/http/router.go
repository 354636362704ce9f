package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/passkit-service/internal/api/http/handlers"
	"github.com/spec-kit/passkit-service/internal/auth"
	"github.com/spec-kit/passkit-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Templates      *handlers.TemplatesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	templates := app.Group("/templates", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	templates.Post("/", cfg.Templates.Create)
	templates.Get("/", cfg.Templates.List)
	templates.Post("/validate", cfg.Templates.Validate)
	templates.Get("/:id", cfg.Templates.Get)
	templates.Put("/:id", cfg.Templates.Update)
	templates.Delete("/:id", auth.RequireRole(domain.UserRoleAdmin), cfg.Templates.Archive)
	templates.Get("/:id/apple", cfg.Templates.ApplePreview)
}
