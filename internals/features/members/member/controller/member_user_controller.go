package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jamaatku_backend/internals/features/members/member/dto"
	"jamaatku_backend/internals/features/members/member/model"
	helper "jamaatku_backend/internals/helpers"
)

type MemberUserController struct {
	DB *gorm.DB
}

func NewMemberUserController(db *gorm.DB) *MemberUserController {
	return &MemberUserController{DB: db}
}

func (mc *MemberUserController) currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return uuid.Nil, errors.New("unauthorized")
	}
	return uuid.Parse(userIDStr)
}

// GET /api/u/profile
func (mc *MemberUserController) GetProfile(c *fiber.Ctx) error {
	userID, err := mc.currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var member model.MemberModel
	if err := mc.DB.WithContext(c.UserContext()).First(&member, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.JsonOK(c, "OK", dto.ToMemberResponse(&member))
}

// PUT /api/u/profile
// Anggota hanya boleh ubah data kontaknya sendiri.
func (mc *MemberUserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := mc.currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var member model.MemberModel
	if err := mc.DB.First(&member, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Address != nil {
		member.Address = *req.Address
	}
	if req.Profession != nil {
		member.Profession = *req.Profession
	}

	if err := member.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := mc.DB.WithContext(c.UserContext()).Save(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", dto.ToMemberResponse(&member))
}
