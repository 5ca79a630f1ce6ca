package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "jamaatku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type memberCounts struct {
	Admins  int64 `json:"admins"`
	Members int64 `json:"members"`
	Musi    int64 `json:"musi"`
	Male    int64 `json:"male"`
	Female  int64 `json:"female"`
}

type topMemberRow struct {
	JamaatID      string  `json:"jamaat_id"`
	Name          string  `json:"name"`
	Surname       string  `json:"surname"`
	TotalPromised float64 `json:"total_promised"`
	TotalPaid     float64 `json:"total_paid"`
	Remaining     float64 `json:"remaining"`
	Completion    float64 `json:"completion_percent"`
}

// GET /api/a/dashboard
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	db := dc.DB.WithContext(c.UserContext())

	var counts memberCounts
	if err := db.Raw(`
		SELECT
			COUNT(*) FILTER (WHERE role = 'admin')     AS admins,
			COUNT(*) FILTER (WHERE role = 'user')      AS members,
			COUNT(*) FILTER (WHERE musi)               AS musi,
			COUNT(*) FILTER (WHERE gender = 'male')    AS male,
			COUNT(*) FILTER (WHERE gender = 'female')  AS female
		FROM users
	`).Scan(&counts).Error; err != nil {
		log.Printf("[ERROR] dashboard counts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik anggota")
	}

	var totalPromised float64
	if err := db.Raw(`SELECT COALESCE(SUM(promise_amount), 0) FROM promises`).
		Scan(&totalPromised).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil total promise")
	}

	// Top 10 anggota berdasarkan total promise, dengan total bayar dan sisa.
	var top []topMemberRow
	if err := db.Raw(`
		SELECT
			u.jamaat_id,
			u.name,
			u.surname,
			COALESCE(SUM(p.promise_amount), 0) AS total_promised,
			COALESCE(pay.paid, 0)              AS total_paid,
			COALESCE(SUM(p.promise_amount), 0) - COALESCE(pay.paid, 0) AS remaining,
			CASE WHEN COALESCE(SUM(p.promise_amount), 0) > 0
				THEN ROUND((COALESCE(pay.paid, 0) * 100.0 / SUM(p.promise_amount))::numeric, 1)
				ELSE 0
			END AS completion
		FROM users u
		JOIN promises p ON p.promise_user_id = u.id
		LEFT JOIN (
			SELECT pr.promise_user_id AS user_id, SUM(pm.payment_amount) AS paid
			FROM payments pm
			JOIN promises pr ON pr.promise_id = pm.payment_promise_id
			GROUP BY pr.promise_user_id
		) pay ON pay.user_id = u.id
		GROUP BY u.id, u.jamaat_id, u.name, u.surname, pay.paid
		ORDER BY total_promised DESC
		LIMIT 10
	`).Scan(&top).Error; err != nil {
		log.Printf("[ERROR] dashboard top members: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil peringkat anggota")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"counts": counts,
		"total_promised": fiber.Map{
			"amount":  totalPromised,
			"display": helper.FormatEUR(totalPromised),
		},
		"top_members": top,
	})
}
