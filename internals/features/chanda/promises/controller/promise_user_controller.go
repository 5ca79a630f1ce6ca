package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jamaatku_backend/internals/features/chanda/promises/service"
	helper "jamaatku_backend/internals/helpers"
)

type PromiseUserController struct {
	DB *gorm.DB
}

func NewPromiseUserController(db *gorm.DB) *PromiseUserController {
	return &PromiseUserController{DB: db}
}

// GET /api/u/promises
// Ledger milik anggota yang sedang login, beserta agregat per tahun.
func (pc *PromiseUserController) GetOwnPromises(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	ledger, err := service.GetOwnLedger(pc.DB.WithContext(c.UserContext()), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data promise")
	}

	return helper.JsonOK(c, "OK", ledgerResponse(ledger))
}
