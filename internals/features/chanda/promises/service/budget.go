package service

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/bytedance/sonic"

	helper "jamaatku_backend/internals/helpers"
)

/* =========================================================
   TABEL TARIF CHANDA
   Persentase dari penghasilan bulanan per kategori.
   Chanda Wasiyyat hanya untuk anggota musi, Chanda Aam
   hanya untuk non-musi, sisanya berlaku untuk semua.
   ========================================================= */

const (
	AppliesAlways  = "always"
	AppliesMusi    = "musi"
	AppliesNonMusi = "non_musi"
)

type Rate struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Applies string  `json:"applies"`
}

type BudgetRow struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

var defaultRateTable = []Rate{
	{Name: "Chanda Wasiyyat", Percent: 10, Applies: AppliesMusi},
	{Name: "Chanda Aam", Percent: 6.25, Applies: AppliesNonMusi},
	{Name: "Jalsa Salana", Percent: 0.833, Applies: AppliesAlways},
	{Name: "Chanda Khuddam", Percent: 1, Applies: AppliesAlways},
	{Name: "Ijtema", Percent: 0.208, Applies: AppliesAlways},
	{Name: "Tabligh", Percent: 0.2, Applies: AppliesAlways},
}

var (
	rateMu    sync.RWMutex
	rateTable = defaultRateTable
)

var ErrInvalidIncome = errors.New("penghasilan harus lebih besar dari 0")

// CurrentRateTable mengembalikan salinan tabel tarif aktif.
func CurrentRateTable() []Rate {
	rateMu.RLock()
	defer rateMu.RUnlock()
	out := make([]Rate, len(rateTable))
	copy(out, rateTable)
	return out
}

// LoadRateTable mengganti tabel tarif dari file JSON (CHANDA_RATES_FILE).
// Path kosong berarti pakai tabel default.
func LoadRateTable(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var rates []Rate
	if err := sonic.Unmarshal(raw, &rates); err != nil {
		return err
	}
	if len(rates) == 0 {
		return errors.New("rate table kosong")
	}
	for i, r := range rates {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("rate[%d]: nama kosong", i)
		}
		if r.Percent <= 0 {
			return fmt.Errorf("rate[%d] %s: persen harus > 0", i, r.Name)
		}
		switch r.Applies {
		case AppliesAlways, AppliesMusi, AppliesNonMusi:
		default:
			return fmt.Errorf("rate[%d] %s: applies tidak dikenal %q", i, r.Name, r.Applies)
		}
	}

	rateMu.Lock()
	rateTable = rates
	rateMu.Unlock()
	log.Printf("[INFO] Rate table chanda dimuat dari %s (%d kategori)", path, len(rates))
	return nil
}

// ComputeBudget menghitung baris janji bayar dari penghasilan bulanan.
// Anggota musi memakai Chanda Wasiyyat; non-musi memakai Chanda Aam.
func ComputeBudget(monthlyIncome float64, musi bool) ([]BudgetRow, error) {
	if monthlyIncome <= 0 {
		return nil, ErrInvalidIncome
	}

	rates := CurrentRateTable()
	rows := make([]BudgetRow, 0, len(rates))
	for _, r := range rates {
		switch r.Applies {
		case AppliesMusi:
			if !musi {
				continue
			}
		case AppliesNonMusi:
			if musi {
				continue
			}
		}
		rows = append(rows, BudgetRow{
			Name:    r.Name,
			Percent: r.Percent,
			Amount:  helper.Round2(monthlyIncome * r.Percent / 100),
		})
	}
	return rows, nil
}
