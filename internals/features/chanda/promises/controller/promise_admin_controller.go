package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jamaatku_backend/internals/features/chanda/promises/dto"
	"jamaatku_backend/internals/features/chanda/promises/service"
	memberDto "jamaatku_backend/internals/features/members/member/dto"
	memberService "jamaatku_backend/internals/features/members/member/service"
	helper "jamaatku_backend/internals/helpers"
)

type PromiseAdminController struct {
	DB *gorm.DB
}

func NewPromiseAdminController(db *gorm.DB) *PromiseAdminController {
	return &PromiseAdminController{DB: db}
}

func ledgerResponse(ledger *service.MemberLedger) dto.MemberLedgerResponse {
	promises := make([]dto.PromiseResponse, 0, len(ledger.Promises))
	for _, lp := range ledger.Promises {
		promises = append(promises, dto.ToPromiseResponse(lp))
	}
	return dto.MemberLedgerResponse{
		Member:   memberDto.ToMemberResponse(&ledger.Member),
		Promises: promises,
		Years:    ledger.Years,
	}
}

// GET /api/a/promises/by-jamaat-id/:jamaat_id
// "Tidak ketemu" adalah hasil normal dari pencarian, bukan error sistem.
func (pc *PromiseAdminController) GetMemberLedger(c *fiber.Ctx) error {
	jamaatID := strings.TrimSpace(c.Params("jamaat_id"))
	if jamaatID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jamaat ID wajib diisi")
	}

	ledger, err := service.GetMemberLedger(pc.DB.WithContext(c.UserContext()), jamaatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota dengan Jamaat ID tersebut tidak ditemukan")
		}
		log.Printf("[ERROR] GetMemberLedger: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data promise")
	}

	return helper.JsonOK(c, "OK", ledgerResponse(ledger))
}

// POST /api/a/promises
func (pc *PromiseAdminController) CreatePromise(c *fiber.Ctx) error {
	var req dto.CreatePromiseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	member, err := memberService.FindMemberByJamaatID(pc.DB, strings.TrimSpace(req.JamaatID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota dengan Jamaat ID tersebut tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	typeID, err := uuid.Parse(req.ChandaTypeID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "chanda_type_id tidak valid")
	}
	if req.Year < 2000 || req.Year > 2100 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tahun tidak valid")
	}
	dueDate, err := memberDto.ParseDate(req.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format due_date tidak valid (YYYY-MM-DD)")
	}

	promise, err := service.CreateManualPromise(
		pc.DB.WithContext(c.UserContext()),
		member.ID, typeID, req.Year, req.Amount, dueDate, req.InitialPayment,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicatePromise):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidAmount):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nominal promise harus lebih besar dari 0")
		default:
			log.Printf("[ERROR] CreatePromise: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan promise")
		}
	}

	return helper.JsonCreated(c, "Promise berhasil dibuat", promise)
}

// POST /api/a/promises/budget-preview
// Hitung baris kalkulator tanpa menulis apa pun.
func (pc *PromiseAdminController) PreviewBudget(c *fiber.Ctx) error {
	var req dto.BudgetPreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := service.ComputeBudget(req.MonthlyIncome, req.Musi)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	display := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		display = append(display, fiber.Map{
			"name":           r.Name,
			"percent":        r.Percent,
			"amount":         r.Amount,
			"amount_display": helper.FormatEUR(r.Amount),
		})
	}
	return helper.JsonOK(c, "OK", display)
}

// POST /api/a/promises/budget-batch
func (pc *PromiseAdminController) CreateBudgetBatch(c *fiber.Ctx) error {
	var req dto.BudgetBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	member, err := memberService.FindMemberByJamaatID(pc.DB, strings.TrimSpace(req.JamaatID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota dengan Jamaat ID tersebut tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}
	if req.Year < 2000 || req.Year > 2100 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tahun tidak valid")
	}

	created, err := service.CreateBudgetBatch(
		pc.DB.WithContext(c.UserContext()),
		member.ID, req.Year, req.MonthlyIncome, member.Musi,
	)
	if err != nil {
		var violation *service.BatchViolation
		switch {
		case errors.Is(err, service.ErrInvalidIncome):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		case errors.As(err, &violation):
			return helper.JsonValidationError(c, fiber.Map{
				"missing_types": violation.MissingTypes,
				"duplicates":    violation.Duplicates,
				"detail":        violation.Error(),
			})
		default:
			log.Printf("[ERROR] CreateBudgetBatch: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan batch promise")
		}
	}

	return helper.JsonCreated(c, "Batch promise berhasil disimpan", created)
}

// PUT /api/a/promises/:id/payments/total
// Ganti seluruh payment promise dengan satu payment baru sebesar total.
func (pc *PromiseAdminController) ReplacePaymentTotal(c *fiber.Ctx) error {
	promiseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ReplacePaymentTotalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := service.ReplacePaymentTotal(pc.DB.WithContext(c.UserContext()), promiseID, req.NewTotal); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Promise tidak ditemukan")
		case errors.Is(err, service.ErrInvalidAmount):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Total tidak boleh negatif")
		default:
			log.Printf("[ERROR] ReplacePaymentTotal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pembayaran")
		}
	}

	return helper.JsonUpdated(c, "Total pembayaran berhasil diperbarui", nil)
}

// POST /api/a/promises/:id/payments
func (pc *PromiseAdminController) AddPayment(c *fiber.Ctx) error {
	promiseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.AddPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var paidAt time.Time
	if req.PaidAt != "" {
		t, err := memberDto.ParseDate(req.PaidAt)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format paid_at tidak valid (YYYY-MM-DD)")
		}
		paidAt = *t
	}

	pay, err := service.AddPayment(pc.DB.WithContext(c.UserContext()), promiseID, req.Amount, paidAt)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Promise tidak ditemukan")
		case errors.Is(err, service.ErrInvalidAmount):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nominal pembayaran harus lebih besar dari 0")
		default:
			log.Printf("[ERROR] AddPayment: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
		}
	}

	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", pay)
}

// DELETE /api/a/promises/:id
func (pc *PromiseAdminController) DeletePromise(c *fiber.Ctx) error {
	promiseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := service.DeletePromiseCascade(pc.DB.WithContext(c.UserContext()), promiseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Promise tidak ditemukan")
		}
		log.Printf("[ERROR] DeletePromise: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus promise")
	}

	return helper.JsonDeleted(c, "Promise beserta pembayarannya berhasil dihapus", nil)
}
