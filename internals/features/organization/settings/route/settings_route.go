// file: internals/features/organization/settings/route/settings_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "jamaatku_backend/internals/features/organization/settings/controller"
)

// Base: /api/a (admin)
func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	settingsController := controller.NewSettingsController(db)
	collectorController := controller.NewCollectorController(db)

	admin.Get("/settings", settingsController.GetSettings)
	admin.Put("/settings", settingsController.UpsertSettings)

	collectors := admin.Group("/collectors")
	collectors.Post("/", collectorController.CreateCollector)
	collectors.Get("/", collectorController.GetCollectors)
	collectors.Put("/:id", collectorController.UpdateCollector)
	collectors.Delete("/:id", collectorController.DeleteCollector)
}

// Base: /api/u (anggota)
func SettingsUserRoutes(user fiber.Router, db *gorm.DB) {
	collectorController := controller.NewCollectorController(db)

	user.Get("/info", collectorController.GetOrganizationInfo)
}
