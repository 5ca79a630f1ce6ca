package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentModel merepresentasikan tabel payments (setoran terhadap promise)
type PaymentModel struct {
	ID        uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PromiseID uuid.UUID `gorm:"column:payment_promise_id;type:uuid;not null;index" json:"payment_promise_id"`
	Amount    float64   `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`
	PaidAt    time.Time `gorm:"column:payment_paid_at;not null" json:"payment_paid_at"`

	CreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	UpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now().UTC()
	}
	return nil
}
