package dto

import (
	"time"

	"github.com/google/uuid"

	"jamaatku_backend/internals/features/chanda/promises/model"
	"jamaatku_backend/internals/features/chanda/promises/service"
	helper "jamaatku_backend/internals/helpers"
)

/* ============================
   Request DTO
============================ */

type CreatePromiseRequest struct {
	JamaatID       string  `json:"jamaat_id" validate:"required"`
	ChandaTypeID   string  `json:"chanda_type_id" validate:"required,uuid"`
	Year           int     `json:"year" validate:"required,min=2000,max=2100"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	DueDate        string  `json:"due_date"` // format: 2006-01-02
	InitialPayment float64 `json:"initial_payment" validate:"omitempty,gte=0"`
}

type BudgetBatchRequest struct {
	JamaatID      string  `json:"jamaat_id" validate:"required"`
	Year          int     `json:"year" validate:"required,min=2000,max=2100"`
	MonthlyIncome float64 `json:"monthly_income" validate:"required,gt=0"`
}

type BudgetPreviewRequest struct {
	MonthlyIncome float64 `json:"monthly_income" validate:"required,gt=0"`
	Musi          bool    `json:"musi"`
}

type ReplacePaymentTotalRequest struct {
	NewTotal float64 `json:"new_total" validate:"gte=0"`
}

type AddPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	PaidAt string  `json:"paid_at"` // format: 2006-01-02, default hari ini
}

/* ============================
   Response DTO
============================ */

type PaymentResponse struct {
	ID     uuid.UUID `json:"id"`
	Amount float64   `json:"amount"`
	PaidAt time.Time `json:"paid_at"`
}

type PromiseResponse struct {
	ID            uuid.UUID         `json:"id"`
	ChandaTypeID  uuid.UUID         `json:"chanda_type_id"`
	TypeName      string            `json:"type_name"`
	Year          int               `json:"year"`
	Amount        float64           `json:"amount"`
	AmountDisplay string            `json:"amount_display"`
	DueDate       *time.Time        `json:"due_date,omitempty"`
	TotalPaid     float64           `json:"total_paid"`
	Remaining     float64           `json:"remaining"`
	LastPaymentAt *time.Time        `json:"last_payment_at,omitempty"`
	Payments      []PaymentResponse `json:"payments"`
}

type MemberLedgerResponse struct {
	Member   interface{}           `json:"member"`
	Promises []PromiseResponse     `json:"promises"`
	Years    []service.YearSummary `json:"years"`
}

func ToPaymentResponses(payments []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentResponse{ID: p.ID, Amount: p.Amount, PaidAt: p.PaidAt})
	}
	return out
}

func ToPromiseResponse(lp service.LedgerPromise) PromiseResponse {
	return PromiseResponse{
		ID:            lp.Promise.ID,
		ChandaTypeID:  lp.Promise.ChandaTypeID,
		TypeName:      lp.TypeName,
		Year:          lp.Promise.Year,
		Amount:        lp.Promise.Amount,
		AmountDisplay: helper.FormatEUR(lp.Promise.Amount),
		DueDate:       lp.Promise.DueDate,
		TotalPaid:     lp.Summary.TotalPaid,
		Remaining:     lp.Summary.Remaining,
		LastPaymentAt: lp.Summary.LastPaymentAt,
		Payments:      ToPaymentResponses(lp.Payments),
	}
}
