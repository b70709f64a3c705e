package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/egeorganic/site-api/internal/config"
	"github.com/egeorganic/site-api/internal/handler"
	"github.com/egeorganic/site-api/internal/middleware"
	"github.com/egeorganic/site-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ContactHandler    *handler.ContactHandler
	NewsletterHandler *handler.NewsletterHandler
	LeadHandler       *handler.LeadHandler
	AdminHandler      *handler.AdminSubmissionHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Public form endpoints, rate limited per client IP.
	forms := app.Group("/api/forms")
	if deps.ContactHandler != nil {
		contact := forms.Group("/contact", middleware.RateLimit("contact", cfg.FormRateLimit, cfg.FormRateWindow))
		deps.ContactHandler.Register(contact)
	}
	if deps.NewsletterHandler != nil {
		newsletter := forms.Group("/newsletter", middleware.RateLimit("newsletter", cfg.FormRateLimit, cfg.FormRateWindow))
		deps.NewsletterHandler.Register(newsletter)
	}
	if deps.LeadHandler != nil {
		lead := forms.Group("/learn-more", middleware.RateLimit("learn-more", cfg.FormRateLimit, cfg.FormRateWindow))
		deps.LeadHandler.Register(lead)
	}

	// Operator read surface.
	if deps.AdminHandler != nil {
		jwtMiddleware := deps.JWTMiddleware
		if jwtMiddleware == nil {
			jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
		}
		admin := app.Group("/api/admin/submissions", jwtMiddleware)
		deps.AdminHandler.Register(admin)
	}
}
