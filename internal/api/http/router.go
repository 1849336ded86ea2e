package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/api/http/handlers"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health           *handlers.HealthHandler
	Admin            *handlers.AdminHandler
	ShareLinks       *handlers.ShareLinksHandler
	Content          *handlers.ContentHandler
	AdminMiddleware  *auth.AdminMiddleware
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

// RegisterRoutes wires HTTP routes. Every route under /api/admin except login,
// logout and session requires a valid admin session before its handler runs.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	share := api.Group("/share")
	share.Post("/validate", cfg.ShareLinks.Validate)
	share.Get("/links/:code", cfg.ShareLinks.CheckCode)

	content := api.Group("/content", cfg.AdminMiddleware.Optional)
	content.Get("/:resource", cfg.Content.List)
	content.Get("/:resource/:key", cfg.Content.Get)

	admin := api.Group("/admin")
	admin.Post("/login", loginLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow), cfg.Admin.Login)
	admin.Post("/logout", cfg.Admin.Logout)
	admin.Get("/session", cfg.Admin.Session)

	protected := admin.Group("", cfg.AdminMiddleware.RequireAdmin)
	protected.Get("/metrics", cfg.Health.Metrics)
	protected.Post("/share-links", cfg.ShareLinks.CreateEphemeral)
	protected.Post("/share-links/revocable", cfg.ShareLinks.CreateRevocable)
	protected.Get("/share-links", cfg.ShareLinks.List)
	protected.Delete("/share-links/:code", cfg.ShareLinks.Revoke)
	protected.Put("/content/:resource/:key", cfg.Content.Put)
	protected.Delete("/content/:resource/:key", cfg.Content.Delete)
}
