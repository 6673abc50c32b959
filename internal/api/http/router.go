package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Behnamfe76/aftersales-ops/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Dashboard     *handlers.DashboardHandler
	Settings      *handlers.SettingsHandler
	StatusMapping *handlers.StatusMappingHandler
	Library       *handlers.LibraryHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	dashboard := app.Group("/dashboard")
	dashboard.Get("/dealers", cfg.Dashboard.DealerStats)
	dashboard.Get("/employees", cfg.Dashboard.EmployeeStats)
	dashboard.Get("/repairs", cfg.Dashboard.RepairStats)
	dashboard.Get("/trends/monthly", cfg.Dashboard.MonthlyTrend)
	dashboard.Get("/matrix", cfg.Dashboard.StatusMatrix)
	dashboard.Get("/export", cfg.Dashboard.Export)
	dashboard.Post("/refresh", cfg.Dashboard.Refresh)

	app.Get("/settings", cfg.Settings.GetSettings)
	app.Put("/settings/:category/:entityId", cfg.Settings.SetVisibility)

	app.Get("/status-mapping", cfg.StatusMapping.GetMapping)
	app.Put("/status-mapping/:code", cfg.StatusMapping.UpsertEntry)

	library := app.Group("/library")
	library.Get("/tree", cfg.Library.Tree)
	library.Post("/catalogues", cfg.Library.CreateCatalogue)
	library.Post("/files", cfg.Library.UploadFile)
	library.Get("/files/:id/download", cfg.Library.DownloadFile)
}
