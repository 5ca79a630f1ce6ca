package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromiseModel merepresentasikan tabel promises (janji bayar chanda per tahun)
type PromiseModel struct {
	ID           uuid.UUID `gorm:"column:promise_id;type:uuid;default:gen_random_uuid();primaryKey" json:"promise_id"`
	UserID       uuid.UUID `gorm:"column:promise_user_id;type:uuid;not null;index;uniqueIndex:uq_promise_user_type_year" json:"promise_user_id"`
	ChandaTypeID uuid.UUID `gorm:"column:promise_chanda_type_id;type:uuid;not null;uniqueIndex:uq_promise_user_type_year" json:"promise_chanda_type_id"`
	Year         int       `gorm:"column:promise_year;not null;uniqueIndex:uq_promise_user_type_year" json:"promise_year"`
	Amount       float64   `gorm:"column:promise_amount;type:numeric(12,2);not null" json:"promise_amount"`

	DueDate *time.Time `gorm:"column:promise_due_date;type:date" json:"promise_due_date,omitempty"`

	CreatedAt time.Time `gorm:"column:promise_created_at;autoCreateTime" json:"promise_created_at"`
	UpdatedAt time.Time `gorm:"column:promise_updated_at;autoUpdateTime" json:"promise_updated_at"`
}

func (PromiseModel) TableName() string {
	return "promises"
}

func (p *PromiseModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
