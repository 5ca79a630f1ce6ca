package dto

import (
	"time"

	"github.com/google/uuid"

	"jamaatku_backend/internals/features/members/member/model"
)

// ============================
// Request DTO
// ============================

type CreateMemberRequest struct {
	JamaatID    string `json:"jamaat_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Jamaat      string `json:"jamaat"`
	DateOfBirth string `json:"date_of_birth"` // format: 2006-01-02
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Profession  string `json:"profession"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
	Musi        bool   `json:"musi"`
	Role        string `json:"role" validate:"omitempty,oneof=admin user"`
}

type UpdateMemberRequest struct {
	Name        *string `json:"name,omitempty"`
	Surname     *string `json:"surname,omitempty"`
	Email       *string `json:"email,omitempty"`
	Jamaat      *string `json:"jamaat,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Profession  *string `json:"profession,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Musi        *bool   `json:"musi,omitempty"`
	Role        *string `json:"role,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// Anggota hanya boleh ubah data kontak miliknya sendiri.
type UpdateProfileRequest struct {
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	Profession *string `json:"profession,omitempty"`
}

// ============================
// Response DTO
// ============================

type MemberResponse struct {
	ID          uuid.UUID  `json:"id"`
	JamaatID    string     `json:"jamaat_id"`
	Name        string     `json:"name"`
	Surname     string     `json:"surname"`
	Email       string     `json:"email"`
	Jamaat      string     `json:"jamaat"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Profession  string     `json:"profession"`
	Gender      string     `json:"gender"`
	Musi        bool       `json:"musi"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToMemberResponse(m *model.MemberModel) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		JamaatID:    m.JamaatID,
		Name:        m.Name,
		Surname:     m.Surname,
		Email:       m.Email,
		Jamaat:      m.Jamaat,
		DateOfBirth: m.DateOfBirth,
		Phone:       m.Phone,
		Address:     m.Address,
		Profession:  m.Profession,
		Gender:      m.Gender,
		Musi:        m.Musi,
		Role:        m.Role,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

func ToMemberResponseList(models []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(models))
	for i := range models {
		out = append(out, ToMemberResponse(&models[i]))
	}
	return out
}

// ParseDate menerima format 2006-01-02 (kolom date)
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
