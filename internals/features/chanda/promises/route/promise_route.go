// file: internals/features/chanda/promises/route/promise_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "jamaatku_backend/internals/features/chanda/promises/controller"
)

// Base: /api/a (admin)
func PromiseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	promiseController := controller.NewPromiseAdminController(db)

	promises := admin.Group("/promises")
	promises.Get("/by-jamaat-id/:jamaat_id", promiseController.GetMemberLedger)
	promises.Post("/", promiseController.CreatePromise)
	promises.Post("/budget-preview", promiseController.PreviewBudget)
	promises.Post("/budget-batch", promiseController.CreateBudgetBatch)
	promises.Put("/:id/payments/total", promiseController.ReplacePaymentTotal)
	promises.Post("/:id/payments", promiseController.AddPayment)
	promises.Delete("/:id", promiseController.DeletePromise)
}

// Base: /api/u (anggota)
func PromiseUserRoutes(user fiber.Router, db *gorm.DB) {
	promiseController := controller.NewPromiseUserController(db)

	user.Get("/promises", promiseController.GetOwnPromises)
}
