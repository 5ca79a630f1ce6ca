// file: internals/features/members/member/route/member_user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "jamaatku_backend/internals/features/members/member/controller"
)

// Base: /api/u (sudah lewat AuthMiddleware)
func MemberUserRoutes(user fiber.Router, db *gorm.DB) {
	profileController := controller.NewMemberUserController(db)

	user.Get("/profile", profileController.GetProfile)
	user.Put("/profile", profileController.UpdateProfile)
}
