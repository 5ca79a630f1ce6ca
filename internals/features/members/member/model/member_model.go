package model

import (
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

// Nomor telepon Jerman: +49... atau 0...
var phoneRegex = regexp.MustCompile(`^(\+49|0)[1-9][0-9]{8,14}$`)

func init() {
	_ = validate.RegisterValidation("phone_de", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if v == "" {
			return true
		}
		return phoneRegex.MatchString(v)
	})
}

// MemberModel merepresentasikan tabel users di database
type MemberModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	JamaatID string    `gorm:"size:20;unique;not null" json:"jamaat_id" validate:"required,min=1,max=20"`
	Name     string    `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Surname  string    `gorm:"size:100;not null" json:"surname" validate:"required,min=2,max=100"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`

	Jamaat      string     `gorm:"size:100" json:"jamaat"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Phone       string     `gorm:"size:30" json:"phone" validate:"omitempty,phone_de"`
	Address     string     `gorm:"size:255" json:"address"`
	Profession  string     `gorm:"size:100" json:"profession"`
	Gender      string     `gorm:"type:varchar(10);not null" json:"gender" validate:"required,oneof=male female"`

	// Musi menandai anggota peserta skema Wasiyyat (tarif chanda berbeda)
	Musi bool   `gorm:"not null;default:false" json:"musi"`
	Role string `gorm:"type:varchar(20);not null;default:'user'" json:"role" validate:"omitempty,oneof=admin user"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (MemberModel) TableName() string {
	return "users"
}

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (m *MemberModel) SetDefaultValues() {
	if m.Role == "" {
		m.Role = "user"
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (m *MemberModel) Validate() error {
	m.SetDefaultValues()

	if err := validate.Struct(m); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " wajib diisi."
			case "email":
				errorMessages[fieldErr.Field()] = "Format email tidak valid."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus minimal " + fieldErr.Param() + " karakter."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter."
			case "oneof":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus salah satu dari " + fieldErr.Param() + "."
			case "phone_de":
				errorMessages[fieldErr.Field()] = "Format nomor telepon tidak valid (contoh: +4917612345678 atau 017612345678)."
			default:
				errorMessages[fieldErr.Field()] = "Format tidak valid."
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}
	return err
}

// formatErrorMessage mengubah map error menjadi string
func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
