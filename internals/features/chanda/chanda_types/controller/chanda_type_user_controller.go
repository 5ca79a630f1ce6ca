package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jamaatku_backend/internals/features/chanda/chanda_types/dto"
	"jamaatku_backend/internals/features/chanda/chanda_types/model"
	promiseService "jamaatku_backend/internals/features/chanda/promises/service"
	helper "jamaatku_backend/internals/helpers"
)

type ChandaTypeUserController struct {
	DB *gorm.DB
}

func NewChandaTypeUserController(db *gorm.DB) *ChandaTypeUserController {
	return &ChandaTypeUserController{DB: db}
}

// GET /api/u/chanda-types
func (cc *ChandaTypeUserController) GetChandaTypes(c *fiber.Ctx) error {
	var types []model.ChandaTypeModel
	if err := cc.DB.WithContext(c.UserContext()).
		Order("chanda_type_name ASC").
		Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.JsonOK(c, "OK", dto.ToChandaTypeResponseList(types))
}

// GET /api/u/chanda-info
// Tabel tarif informasional untuk anggota (persentase per kategori).
func (cc *ChandaTypeUserController) GetChandaInfo(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", fiber.Map{
		"rates": promiseService.CurrentRateTable(),
	})
}
