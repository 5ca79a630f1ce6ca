// file: internals/features/members/member/route/member_admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "jamaatku_backend/internals/features/members/member/controller"
	rateLimiter "jamaatku_backend/internals/middlewares"
)

// Base: /api/a (sudah lewat AuthMiddleware + role admin)
func MemberAdminRoutes(admin fiber.Router, db *gorm.DB) {
	memberController := controller.NewMemberAdminController(db)

	members := admin.Group("/members")
	members.Post("/", rateLimiter.RegisterRateLimiter(), memberController.CreateMember)
	members.Get("/", memberController.GetMembers)
	members.Get("/by-jamaat-id/:jamaat_id", memberController.GetMemberByJamaatID)
	members.Get("/:id", memberController.GetMember)
	members.Put("/:id", memberController.UpdateMember)
	members.Delete("/:id", memberController.DeleteMember)
}
