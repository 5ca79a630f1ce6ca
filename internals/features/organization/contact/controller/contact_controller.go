package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jamaatku_backend/internals/features/organization/contact/model"
	helper "jamaatku_backend/internals/helpers"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// POST /api/u/contact
func (cc *ContactController) CreateMessage(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	var req struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Subject = strings.TrimSpace(req.Subject)
	req.Body = strings.TrimSpace(req.Body)
	if req.Subject == "" || req.Body == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Subjek dan isi pesan wajib diisi")
	}

	msg := model.ContactMessageModel{
		UserID:  userID,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := cc.DB.WithContext(c.UserContext()).Create(&msg).Error; err != nil {
		log.Printf("[ERROR] CreateMessage: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}

	return helper.JsonCreated(c, "Pesan berhasil dikirim ke pengurus", msg)
}

// GET /api/a/contact-messages
func (cc *ContactController) GetMessages(c *fiber.Ctx) error {
	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := cc.DB.Model(&model.ContactMessageModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	var messages []model.ContactMessageModel
	if err := cc.DB.WithContext(c.UserContext()).
		Order("contact_message_created_at DESC").
		Limit(perPage).Offset(offset).
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	return helper.JsonList(c, "OK", messages, helper.BuildPagination(page, perPage, total))
}
