package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChandaCollectorModel adalah petugas penagih chanda per shoba
// dengan periode tugas.
type ChandaCollectorModel struct {
	ID        uuid.UUID `gorm:"column:collector_id;type:uuid;default:gen_random_uuid();primaryKey" json:"collector_id"`
	ShobaName string    `gorm:"column:collector_shoba_name;size:100;not null" json:"collector_shoba_name"`
	FirstName string    `gorm:"column:collector_first_name;size:100;not null" json:"collector_first_name"`
	LastName  string    `gorm:"column:collector_last_name;size:100;not null" json:"collector_last_name"`
	Phone     string    `gorm:"column:collector_phone;size:30" json:"collector_phone"`
	Nizam     string    `gorm:"column:collector_nizam;size:100" json:"collector_nizam"`

	PeriodStart time.Time `gorm:"column:collector_period_start;type:date;not null" json:"collector_period_start"`
	PeriodEnd   time.Time `gorm:"column:collector_period_end;type:date;not null" json:"collector_period_end"`

	CreatedAt time.Time `gorm:"column:collector_created_at;autoCreateTime" json:"collector_created_at"`
	UpdatedAt time.Time `gorm:"column:collector_updated_at;autoUpdateTime" json:"collector_updated_at"`
}

func (ChandaCollectorModel) TableName() string {
	return "chanda_collectors"
}

func (m *ChandaCollectorModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
