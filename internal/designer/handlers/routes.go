package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Routes
// ============================================================

// Register вешает маршруты API, проб и документации на router.
func Register(router *fiber.App, designer *DesignerHandler, health *HealthHandler) {
	router.Get("/health/live", health.LivenessProbe)
	router.Get("/health/ready", health.ReadinessProbe)
	router.Get("/health/startup", health.StartupProbe)

	router.Get("/docs", SwaggerUI)
	router.Get("/docs/openapi.yaml", SwaggerSpec)

	router.Post("/bathroom/", designer.CreateBathroom)
	router.Get("/bathroom/:bathroom_id", designer.GetBathroom)
	router.Get("/bathroom/:bathroom_id/plan", designer.GetPlan)
	router.Post("/bathroom/:bathroom_id/fixtures", designer.AddFixture)
	router.Get("/design-themes/", designer.ListDesignThemes)

	router.Put("/bathroom/:bathroom_id/fixture/:fixture_id", designer.UpdateFixture)
	router.Put("/bathroom/:bathroom_id/wall/:wall_id", designer.UpdateWall)
	router.Put("/bathroom/:bathroom_id/window/:window_id", designer.UpdateWindow)
	router.Put("/bathroom/:bathroom_id/door/:door_id", designer.UpdateDoor)
	router.Put("/bathroom/:bathroom_id/ventilation/:vent_id", designer.UpdateVentilation)

	router.Delete("/bathroom/:bathroom_id/:component_type/:component_id", designer.DeleteComponent)
}
