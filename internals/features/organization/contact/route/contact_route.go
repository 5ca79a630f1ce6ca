// file: internals/features/organization/contact/route/contact_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "jamaatku_backend/internals/features/organization/contact/controller"
)

// Base: /api/u (anggota)
func ContactUserRoutes(user fiber.Router, db *gorm.DB) {
	contactController := controller.NewContactController(db)

	user.Post("/contact", contactController.CreateMessage)
}

// Base: /api/a (admin)
func ContactAdminRoutes(admin fiber.Router, db *gorm.DB) {
	contactController := controller.NewContactController(db)

	admin.Get("/contact-messages", contactController.GetMessages)
}
