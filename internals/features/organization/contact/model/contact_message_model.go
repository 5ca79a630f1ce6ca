package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessageModel: pesan anggota ke pengurus.
type ContactMessageModel struct {
	ID      uuid.UUID `gorm:"column:contact_message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"contact_message_id"`
	UserID  uuid.UUID `gorm:"column:contact_message_user_id;type:uuid;not null;index" json:"contact_message_user_id"`
	Subject string    `gorm:"column:contact_message_subject;size:150;not null" json:"contact_message_subject"`
	Body    string    `gorm:"column:contact_message_body;type:text;not null" json:"contact_message_body"`

	CreatedAt time.Time `gorm:"column:contact_message_created_at;autoCreateTime" json:"contact_message_created_at"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
