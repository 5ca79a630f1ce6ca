// file: internals/features/chanda/chanda_types/route/chanda_type_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "jamaatku_backend/internals/features/chanda/chanda_types/controller"
)

// Base: /api/a (admin)
func ChandaTypeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	adminController := controller.NewChandaTypeAdminController(db)

	types := admin.Group("/chanda-types")
	types.Post("/", adminController.CreateChandaType)
	types.Get("/", adminController.GetChandaTypes)
	types.Get("/:id", adminController.GetChandaType)
	types.Put("/:id", adminController.UpdateChandaType)
	types.Delete("/:id", adminController.DeleteChandaType)
}

// Base: /api/u (anggota)
func ChandaTypeUserRoutes(user fiber.Router, db *gorm.DB) {
	userController := controller.NewChandaTypeUserController(db)

	user.Get("/chanda-types", userController.GetChandaTypes)
	user.Get("/chanda-info", userController.GetChandaInfo)
}
