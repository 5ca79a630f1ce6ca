// file: internals/features/stats/route/stats_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "jamaatku_backend/internals/features/stats/controller"
)

// Base: /api/a (admin)
func StatsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	dashboardController := controller.NewDashboardController(db)

	admin.Get("/dashboard", dashboardController.GetDashboard)
}
