package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JamaatSettingsModel adalah baris tunggal identitas jamaat
// (nama, alamat, dan jumlah anggota per organisasi badan).
type JamaatSettingsModel struct {
	ID         uuid.UUID `gorm:"column:jamaat_settings_id;type:uuid;default:gen_random_uuid();primaryKey" json:"jamaat_settings_id"`
	JamaatName string    `gorm:"column:jamaat_settings_name;size:100;not null" json:"jamaat_settings_name"`
	Street     string    `gorm:"column:jamaat_settings_street;size:150" json:"jamaat_settings_street"`
	PostalCode string    `gorm:"column:jamaat_settings_postal_code;size:10" json:"jamaat_settings_postal_code"`
	City       string    `gorm:"column:jamaat_settings_city;size:100" json:"jamaat_settings_city"`
	Phone      string    `gorm:"column:jamaat_settings_phone;size:30" json:"jamaat_settings_phone"`

	TotalMembers int `gorm:"column:jamaat_settings_total_members;not null;default:0" json:"jamaat_settings_total_members"`
	AnsarCount   int `gorm:"column:jamaat_settings_ansar_count;not null;default:0" json:"jamaat_settings_ansar_count"`
	KhuddamCount int `gorm:"column:jamaat_settings_khuddam_count;not null;default:0" json:"jamaat_settings_khuddam_count"`
	TiflCount    int `gorm:"column:jamaat_settings_tifl_count;not null;default:0" json:"jamaat_settings_tifl_count"`
	LajnaCount   int `gorm:"column:jamaat_settings_lajna_count;not null;default:0" json:"jamaat_settings_lajna_count"`
	NazaratCount int `gorm:"column:jamaat_settings_nazarat_count;not null;default:0" json:"jamaat_settings_nazarat_count"`

	CreatedAt time.Time `gorm:"column:jamaat_settings_created_at;autoCreateTime" json:"jamaat_settings_created_at"`
	UpdatedAt time.Time `gorm:"column:jamaat_settings_updated_at;autoUpdateTime" json:"jamaat_settings_updated_at"`
}

func (JamaatSettingsModel) TableName() string {
	return "jamaat_settings"
}

func (m *JamaatSettingsModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
