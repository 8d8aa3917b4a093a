package main

import (
	"time"

	"bathroom-designer/internal/common/config"
	"bathroom-designer/internal/common/middleware"
	"bathroom-designer/internal/designer/catalog"
	"bathroom-designer/internal/designer/handlers"
	"bathroom-designer/internal/designer/render"
	"bathroom-designer/internal/designer/repository"
	"bathroom-designer/internal/designer/service"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

func newApp(cfg *config.Config, store repository.RoomStore) *fiber.App {
	svc := service.New(store, catalog.Default())
	metrics := middleware.NewMetrics("designer")

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Bathroom Designer",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS(cfg.CORSOrigins))
	app.Use(metrics.Handler())

	app.Get("/metrics", metrics.Endpoint())

	// ============================================================
	// API Routes
	// ============================================================

	handlers.Register(app,
		handlers.NewDesignerHandler(svc, render.NewRenderer()),
		handlers.NewHealthHandler(svc),
	)

	return app
}
