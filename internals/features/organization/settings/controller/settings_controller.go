package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jamaatku_backend/internals/features/organization/settings/dto"
	"jamaatku_backend/internals/features/organization/settings/model"
	helper "jamaatku_backend/internals/helpers"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// GET /api/a/settings
func (sc *SettingsController) GetSettings(c *fiber.Ctx) error {
	var settings model.JamaatSettingsModel
	if err := sc.DB.WithContext(c.UserContext()).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengaturan jamaat belum diisi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}
	return helper.JsonOK(c, "OK", settings)
}

// PUT /api/a/settings
// Baris tunggal: buat kalau belum ada, selain itu perbarui.
func (sc *SettingsController) UpsertSettings(c *fiber.Ctx) error {
	var req dto.UpsertSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var settings model.JamaatSettingsModel
	err := sc.DB.First(&settings).Error
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}

	settings.JamaatName = req.JamaatName
	settings.Street = req.Street
	settings.PostalCode = req.PostalCode
	settings.City = req.City
	settings.Phone = req.Phone
	settings.TotalMembers = req.TotalMembers
	settings.AnsarCount = req.AnsarCount
	settings.KhuddamCount = req.KhuddamCount
	settings.TiflCount = req.TiflCount
	settings.LajnaCount = req.LajnaCount
	settings.NazaratCount = req.NazaratCount

	if err := sc.DB.WithContext(c.UserContext()).Save(&settings).Error; err != nil {
		log.Printf("[ERROR] UpsertSettings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}

	if isNew {
		return helper.JsonCreated(c, "Pengaturan jamaat berhasil dibuat", settings)
	}
	return helper.JsonUpdated(c, "Pengaturan jamaat berhasil diperbarui", settings)
}
