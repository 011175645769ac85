package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Dashboard Routes ---
	dashboard := api.Group("/dashboard", middleware.Authenticate, middleware.CheckRole("operator"))
	dashboard.Get("/summary", handlers.HandleGetDashboardSummary)
	dashboard.Get("/charts", handlers.HandleGetChartData)
	dashboard.Get("/records", handlers.HandleListRecords)
	dashboard.Get("/filters", handlers.HandleGetFilterOptions)
	dashboard.Get("/export", handlers.HandleExportRecords)

	// --- Insight Routes ---
	insights := api.Group("/insights", middleware.Authenticate, middleware.CheckRole("operator"))
	insights.Post("/summary", handlers.HandleGenerateInsight)
}
