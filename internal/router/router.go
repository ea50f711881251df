package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leetsync/leetsync-api/internal/config"
	"github.com/leetsync/leetsync-api/internal/handler"
	"github.com/leetsync/leetsync-api/internal/middleware"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	SyncHandler      *handler.SyncHandler
	DashboardHandler *handler.DashboardHandler
	ProfileHandler   *handler.ProfileHandler
	JWTMiddleware    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.SyncHandler != nil {
		// Sync runs hit the judge and rewrite the user's stats; keep them rare.
		sync := api.Group("/leetcode", jwtMiddleware, middleware.RateLimit("sync", 5, time.Minute))
		deps.SyncHandler.Register(sync)
	}

	if deps.DashboardHandler != nil {
		dashboard := api.Group("/", jwtMiddleware)
		deps.DashboardHandler.Register(dashboard)
	}

	if deps.ProfileHandler != nil {
		profile := api.Group("/profile", jwtMiddleware)
		deps.ProfileHandler.Register(profile)
	}
}
