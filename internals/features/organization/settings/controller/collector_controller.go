package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jamaatku_backend/internals/features/organization/settings/dto"
	"jamaatku_backend/internals/features/organization/settings/model"
	memberDto "jamaatku_backend/internals/features/members/member/dto"
	helper "jamaatku_backend/internals/helpers"
)

type CollectorController struct {
	DB *gorm.DB
}

func NewCollectorController(db *gorm.DB) *CollectorController {
	return &CollectorController{DB: db}
}

// parseCollector memvalidasi request dan mengisi out.
// Mengembalikan status HTTP + error bila tidak valid; response
// dikirim oleh pemanggil.
func parseCollector(req *dto.CollectorRequest, out *model.ChandaCollectorModel) (int, error) {
	if err := req.Validate(); err != nil {
		return fiber.StatusUnprocessableEntity, err
	}

	start, err := memberDto.ParseDate(req.PeriodStart)
	if err != nil || start == nil {
		return fiber.StatusBadRequest, errors.New("Format period_start tidak valid (YYYY-MM-DD)")
	}
	end, err := memberDto.ParseDate(req.PeriodEnd)
	if err != nil || end == nil {
		return fiber.StatusBadRequest, errors.New("Format period_end tidak valid (YYYY-MM-DD)")
	}
	if end.Before(*start) {
		return fiber.StatusUnprocessableEntity, errors.New("period_end tidak boleh sebelum period_start")
	}

	out.ShobaName = strings.TrimSpace(req.ShobaName)
	out.FirstName = strings.TrimSpace(req.FirstName)
	out.LastName = strings.TrimSpace(req.LastName)
	out.Phone = req.Phone
	out.Nizam = req.Nizam
	out.PeriodStart = *start
	out.PeriodEnd = *end
	return 0, nil
}

// POST /api/a/collectors
func (cc *CollectorController) CreateCollector(c *fiber.Ctx) error {
	var req dto.CollectorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var collector model.ChandaCollectorModel
	if status, err := parseCollector(&req, &collector); err != nil {
		return helper.JsonError(c, status, err.Error())
	}

	if err := cc.DB.WithContext(c.UserContext()).Create(&collector).Error; err != nil {
		log.Printf("[ERROR] CreateCollector: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan petugas")
	}
	return helper.JsonCreated(c, "Petugas chanda berhasil ditambahkan", collector)
}

// GET /api/a/collectors
func (cc *CollectorController) GetCollectors(c *fiber.Ctx) error {
	var collectors []model.ChandaCollectorModel
	if err := cc.DB.WithContext(c.UserContext()).
		Order("collector_shoba_name ASC, collector_period_start DESC").
		Find(&collectors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar petugas")
	}
	return helper.JsonOK(c, "OK", collectors)
}

// PUT /api/a/collectors/:id
func (cc *CollectorController) UpdateCollector(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var collector model.ChandaCollectorModel
	if err := cc.DB.First(&collector, "collector_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Petugas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data petugas")
	}

	var req dto.CollectorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if status, err := parseCollector(&req, &collector); err != nil {
		return helper.JsonError(c, status, err.Error())
	}

	if err := cc.DB.WithContext(c.UserContext()).Save(&collector).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui petugas")
	}
	return helper.JsonUpdated(c, "Petugas chanda berhasil diperbarui", collector)
}

// DELETE /api/a/collectors/:id
func (cc *CollectorController) DeleteCollector(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := cc.DB.WithContext(c.UserContext()).Where("collector_id = ?", id).Delete(&model.ChandaCollectorModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus petugas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Petugas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Petugas chanda berhasil dihapus", nil)
}

// GET /api/u/info
// Direktori kontak untuk anggota: identitas jamaat + petugas yang
// periodenya masih berjalan.
func (cc *CollectorController) GetOrganizationInfo(c *fiber.Ctx) error {
	var settings model.JamaatSettingsModel
	if err := cc.DB.WithContext(c.UserContext()).First(&settings).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}

	var collectors []model.ChandaCollectorModel
	if err := cc.DB.WithContext(c.UserContext()).
		Where("collector_period_end >= CURRENT_DATE").
		Order("collector_shoba_name ASC").
		Find(&collectors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar petugas")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"settings":   settings,
		"collectors": collectors,
	})
}
