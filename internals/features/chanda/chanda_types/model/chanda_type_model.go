package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChandaTypeModel merepresentasikan tabel chanda_types (kategori iuran)
type ChandaTypeModel struct {
	ID          uuid.UUID  `gorm:"column:chanda_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"chanda_type_id"`
	Name        string     `gorm:"column:chanda_type_name;size:100;unique;not null" json:"chanda_type_name"`
	Description string     `gorm:"column:chanda_type_description;type:text" json:"chanda_type_description"`
	CharityEnd  *time.Time `gorm:"column:chanda_type_charity_end;type:date" json:"chanda_type_charity_end,omitempty"`

	CreatedAt time.Time `gorm:"column:chanda_type_created_at;autoCreateTime" json:"chanda_type_created_at"`
	UpdatedAt time.Time `gorm:"column:chanda_type_updated_at;autoUpdateTime" json:"chanda_type_updated_at"`
}

func (ChandaTypeModel) TableName() string {
	return "chanda_types"
}

func (m *ChandaTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
