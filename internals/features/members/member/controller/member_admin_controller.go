package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jamaatku_backend/internals/constants"
	authHelper "jamaatku_backend/internals/features/users/auth/helper"
	"jamaatku_backend/internals/features/members/member/dto"
	"jamaatku_backend/internals/features/members/member/model"
	"jamaatku_backend/internals/features/members/member/service"
	helper "jamaatku_backend/internals/helpers"
)

type MemberAdminController struct {
	DB *gorm.DB
}

func NewMemberAdminController(db *gorm.DB) *MemberAdminController {
	return &MemberAdminController{DB: db}
}

// POST /api/a/members
func (mc *MemberAdminController) CreateMember(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	dob, err := dto.ParseDate(req.DateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal lahir tidak valid (YYYY-MM-DD)")
	}

	member := model.MemberModel{
		JamaatID:    strings.TrimSpace(req.JamaatID),
		Name:        strings.TrimSpace(req.Name),
		Surname:     strings.TrimSpace(req.Surname),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    req.Password,
		Jamaat:      req.Jamaat,
		DateOfBirth: dob,
		Phone:       req.Phone,
		Address:     req.Address,
		Profession:  req.Profession,
		Gender:      req.Gender,
		Musi:        req.Musi,
		Role:        req.Role,
		IsActive:    true,
	}
	if err := member.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Hash password
	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	member.Password = hash

	if err := mc.DB.WithContext(c.UserContext()).Create(&member).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau Jamaat ID sudah terdaftar")
		}
		log.Printf("[ERROR] CreateMember: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat anggota")
	}

	resp := dto.ToMemberResponse(&member)
	return helper.JsonCreated(c, "Anggota berhasil didaftarkan", resp)
}

// GET /api/a/members
func (mc *MemberAdminController) GetMembers(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	filter := service.ListFilter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Gender: c.Query("gender"),
	}
	if v := c.Query("musi"); v != "" {
		musi := v == "true" || v == "1"
		filter.Musi = &musi
	}

	members, total, err := service.ListMembers(mc.DB.WithContext(c.UserContext()), filter, perPage, offset)
	if err != nil {
		log.Printf("[ERROR] GetMembers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	return helper.JsonList(c, "OK", dto.ToMemberResponseList(members), helper.BuildPagination(page, perPage, total))
}

// GET /api/a/members/:id
func (mc *MemberAdminController) GetMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var member model.MemberModel
	if err := mc.DB.WithContext(c.UserContext()).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	return helper.JsonOK(c, "OK", dto.ToMemberResponse(&member))
}

// GET /api/a/members/by-jamaat-id/:jamaat_id
func (mc *MemberAdminController) GetMemberByJamaatID(c *fiber.Ctx) error {
	jamaatID := strings.TrimSpace(c.Params("jamaat_id"))
	if jamaatID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jamaat ID wajib diisi")
	}

	member, err := service.FindMemberByJamaatID(mc.DB.WithContext(c.UserContext()), jamaatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	return helper.JsonOK(c, "OK", dto.ToMemberResponse(member))
}

// PUT /api/a/members/:id
func (mc *MemberAdminController) UpdateMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var member model.MemberModel
	if err := mc.DB.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Name != nil {
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.Surname != nil {
		member.Surname = strings.TrimSpace(*req.Surname)
	}
	if req.Email != nil {
		member.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Jamaat != nil {
		member.Jamaat = *req.Jamaat
	}
	if req.DateOfBirth != nil {
		dob, err := dto.ParseDate(*req.DateOfBirth)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal lahir tidak valid (YYYY-MM-DD)")
		}
		member.DateOfBirth = dob
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
	if req.Gender != nil {
		member.Gender = *req.Gender
	}
	if req.Musi != nil {
		member.Musi = *req.Musi
	}
	if req.Role != nil {
		if !constants.IsValidRole(*req.Role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal: "+*req.Role)
		}
		member.Role = *req.Role
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := member.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := mc.DB.WithContext(c.UserContext()).Save(&member).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau Jamaat ID sudah terdaftar")
		}
		log.Printf("[ERROR] UpdateMember: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui anggota")
	}

	return helper.JsonUpdated(c, "Anggota berhasil diperbarui", dto.ToMemberResponse(&member))
}

// DELETE /api/a/members/:id
// Menghapus payments → promises → anggota dalam satu transaksi.
func (mc *MemberAdminController) DeleteMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := service.DeleteMemberCascade(mc.DB.WithContext(c.UserContext()), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		log.Printf("[ERROR] DeleteMember: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus anggota")
	}

	return helper.JsonDeleted(c, "Anggota beserta seluruh promise & payment berhasil dihapus", nil)
}
