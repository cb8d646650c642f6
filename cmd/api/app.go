package main

import (
	"trivia-api/internal/config"
	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"
	"trivia-api/internal/util"

	_ "trivia-api/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
)

const (
	corsAllowMethods = "GET,PUT,POST,DELETE,OPTIONS"
	corsAllowHeaders = "Content-Type,Authorization,true"
)

// newApp builds the fiber app with its middleware chain and routes.
// CORS covers everything under /api, error envelopes included.
func newApp(cfg *config.Config, triviaHandler *handler.TriviaHandler, healthHandler *handler.HealthHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "trivia-api",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New(requestid.Config{Generator: util.NewULID}))
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())

	app.Get("/health", healthHandler.Check)
	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api", cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
	}))
	triviaHandler.RegisterRoutes(apiGroup)

	return app
}
