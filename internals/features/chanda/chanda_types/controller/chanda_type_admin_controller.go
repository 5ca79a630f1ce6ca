package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jamaatku_backend/internals/features/chanda/chanda_types/dto"
	"jamaatku_backend/internals/features/chanda/chanda_types/model"
	memberDto "jamaatku_backend/internals/features/members/member/dto"
	promiseModel "jamaatku_backend/internals/features/chanda/promises/model"
	helper "jamaatku_backend/internals/helpers"
)

type ChandaTypeAdminController struct {
	DB *gorm.DB
}

func NewChandaTypeAdminController(db *gorm.DB) *ChandaTypeAdminController {
	return &ChandaTypeAdminController{DB: db}
}

// POST /api/a/chanda-types
func (cc *ChandaTypeAdminController) CreateChandaType(c *fiber.Ctx) error {
	var req dto.CreateChandaTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama kategori wajib diisi")
	}

	charityEnd, err := memberDto.ParseDate(req.CharityEnd)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	ct := model.ChandaTypeModel{
		Name:        req.Name,
		Description: req.Description,
		CharityEnd:  charityEnd,
	}
	if err := cc.DB.WithContext(c.UserContext()).Create(&ct).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Kategori dengan nama tersebut sudah ada")
		}
		log.Printf("[ERROR] CreateChandaType: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}

	return helper.JsonCreated(c, "Kategori chanda berhasil dibuat", dto.ToChandaTypeResponse(&ct))
}

// GET /api/a/chanda-types
func (cc *ChandaTypeAdminController) GetChandaTypes(c *fiber.Ctx) error {
	var types []model.ChandaTypeModel
	if err := cc.DB.WithContext(c.UserContext()).
		Order("chanda_type_name ASC").
		Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.JsonOK(c, "OK", dto.ToChandaTypeResponseList(types))
}

// GET /api/a/chanda-types/:id
func (cc *ChandaTypeAdminController) GetChandaType(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ct model.ChandaTypeModel
	if err := cc.DB.WithContext(c.UserContext()).First(&ct, "chanda_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.JsonOK(c, "OK", dto.ToChandaTypeResponse(&ct))
}

// PUT /api/a/chanda-types/:id
func (cc *ChandaTypeAdminController) UpdateChandaType(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ct model.ChandaTypeModel
	if err := cc.DB.First(&ct, "chanda_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	var req dto.UpdateChandaTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama kategori wajib diisi")
		}
		ct.Name = name
	}
	if req.Description != nil {
		ct.Description = *req.Description
	}
	if req.CharityEnd != nil {
		charityEnd, err := memberDto.ParseDate(*req.CharityEnd)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
		}
		ct.CharityEnd = charityEnd
	}

	if err := cc.DB.WithContext(c.UserContext()).Save(&ct).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Kategori dengan nama tersebut sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kategori")
	}

	return helper.JsonUpdated(c, "Kategori chanda berhasil diperbarui", dto.ToChandaTypeResponse(&ct))
}

// DELETE /api/a/chanda-types/:id
// Ditolak selama masih ada promise yang mengacu ke kategori ini.
func (cc *ChandaTypeAdminController) DeleteChandaType(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var refCount int64
	if err := cc.DB.WithContext(c.UserContext()).
		Model(&promiseModel.PromiseModel{}).
		Where("promise_chanda_type_id = ?", id).
		Count(&refCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa promise terkait")
	}
	if refCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			fmt.Sprintf("Kategori tidak bisa dihapus: masih dipakai oleh %d promise", refCount))
	}

	res := cc.DB.WithContext(c.UserContext()).Where("chanda_type_id = ?", id).Delete(&model.ChandaTypeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kategori chanda berhasil dihapus", nil)
}
