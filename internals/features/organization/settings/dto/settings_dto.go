package dto

import (
	"errors"
	"strings"
)

type UpsertSettingsRequest struct {
	JamaatName   string `json:"jamaat_name"`
	Street       string `json:"street"`
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	TotalMembers int    `json:"total_members"`
	AnsarCount   int    `json:"ansar_count"`
	KhuddamCount int    `json:"khuddam_count"`
	TiflCount    int    `json:"tifl_count"`
	LajnaCount   int    `json:"lajna_count"`
	NazaratCount int    `json:"nazarat_count"`
}

func (r *UpsertSettingsRequest) Validate() error {
	if strings.TrimSpace(r.JamaatName) == "" {
		return errors.New("Nama jamaat wajib diisi")
	}
	for _, n := range []int{r.TotalMembers, r.AnsarCount, r.KhuddamCount, r.TiflCount, r.LajnaCount, r.NazaratCount} {
		if n < 0 {
			return errors.New("Jumlah anggota tidak boleh negatif")
		}
	}
	return nil
}

type CollectorRequest struct {
	ShobaName   string `json:"shoba_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	Nizam       string `json:"nizam"`
	PeriodStart string `json:"period_start"` // format: 2006-01-02
	PeriodEnd   string `json:"period_end"`
}

func (r *CollectorRequest) Validate() error {
	if strings.TrimSpace(r.ShobaName) == "" {
		return errors.New("Nama shoba wajib diisi")
	}
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return errors.New("Nama petugas wajib diisi")
	}
	if r.PeriodStart == "" || r.PeriodEnd == "" {
		return errors.New("Periode tugas wajib diisi")
	}
	return nil
}
