package main

import (
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shopbench/internal/config"
	"shopbench/internal/http/handlers"
	applog "shopbench/internal/log"
	"shopbench/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN, cfg.SeedCount)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New())
	app.Use(logger.New())

	deps := handlers.NewDeps(db, cfg)

	// Slow API: naive sequential order path with synthetic load
	v1 := app.Group("/v1/api")
	v1.Get("/products/:id", deps.V1Product.Detail)
	v1.Post("/orders", deps.V1Order.Place)

	// Tuned API: guarded transactional order path
	v2 := app.Group("/v2/api")
	v2.Get("/products/:id", deps.V2Product.Detail)
	v2.Post("/orders", deps.V2Order.Place)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Printf("[server] listening on :%s", cfg.Port)
	log.Printf("[server]   GET  /v1/api/products/:id   POST /v1/api/orders")
	log.Printf("[server]   GET  /v2/api/products/:id   POST /v2/api/orders")
	log.Fatal(app.Listen(":" + cfg.Port))
}
