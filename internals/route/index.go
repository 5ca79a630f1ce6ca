// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"jamaatku_backend/internals/middlewares"
	authMiddleware "jamaatku_backend/internals/middlewares/auth"

	"jamaatku_backend/internals/constants"

	chandaTypeRoute "jamaatku_backend/internals/features/chanda/chanda_types/route"
	promiseRoute "jamaatku_backend/internals/features/chanda/promises/route"
	memberRoute "jamaatku_backend/internals/features/members/member/route"
	contactRoute "jamaatku_backend/internals/features/organization/contact/route"
	settingsRoute "jamaatku_backend/internals/features/organization/settings/route"
	statsRoute "jamaatku_backend/internals/features/stats/route"
	authRoute "jamaatku_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PRIVATE → semua anggota yang login
	log.Println("[INFO] Setting up PRIVATE group (/api/u)...")
	user := app.Group("/api/u",
		middlewares.DBMiddleware(db),
		authMiddleware.AuthMiddleware(db),
	)

	// ADMIN → login + role admin
	log.Println("[INFO] Setting up ADMIN group (/api/a, Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		middlewares.DBMiddleware(db),
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Akses khusus pengurus (admin)", constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Member routes...")
	memberRoute.MemberUserRoutes(user, db)
	memberRoute.MemberAdminRoutes(admin, db)

	log.Println("[INFO] Mounting ChandaType routes...")
	chandaTypeRoute.ChandaTypeUserRoutes(user, db)
	chandaTypeRoute.ChandaTypeAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Promise routes...")
	promiseRoute.PromiseUserRoutes(user, db)
	promiseRoute.PromiseAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Organization routes...")
	settingsRoute.SettingsUserRoutes(user, db)
	settingsRoute.SettingsAdminRoutes(admin, db)
	contactRoute.ContactUserRoutes(user, db)
	contactRoute.ContactAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Stats routes...")
	statsRoute.StatsAdminRoutes(admin, db)

	log.Printf("[INFO] All routes mounted in %s", time.Since(startTime))
}
