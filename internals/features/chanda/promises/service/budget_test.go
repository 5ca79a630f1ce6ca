package service

import (
	"errors"
	"testing"
)

func rowsByName(rows []BudgetRow) map[string]BudgetRow {
	out := make(map[string]BudgetRow, len(rows))
	for _, r := range rows {
		out[r.Name] = r
	}
	return out
}

func TestComputeBudgetNonMusi(t *testing.T) {
	rows, err := ComputeBudget(1000, false)
	if err != nil {
		t.Fatalf("ComputeBudget: %v", err)
	}

	got := rowsByName(rows)
	want := map[string]float64{
		"Chanda Aam":     62.50,
		"Jalsa Salana":   8.33,
		"Chanda Khuddam": 10.00,
		"Ijtema":         2.08,
		"Tabligh":        2.00,
	}
	if len(rows) != len(want) {
		t.Fatalf("jumlah baris = %d, want %d", len(rows), len(want))
	}
	for name, amount := range want {
		r, ok := got[name]
		if !ok {
			t.Errorf("baris %s tidak ada", name)
			continue
		}
		if r.Amount != amount {
			t.Errorf("%s = %v, want %v", name, r.Amount, amount)
		}
	}
	if _, ok := got["Chanda Wasiyyat"]; ok {
		t.Errorf("non-musi tidak boleh dapat Chanda Wasiyyat")
	}
}

func TestComputeBudgetMusi(t *testing.T) {
	rows, err := ComputeBudget(1000, true)
	if err != nil {
		t.Fatalf("ComputeBudget: %v", err)
	}

	got := rowsByName(rows)
	if r, ok := got["Chanda Wasiyyat"]; !ok || r.Amount != 100.00 {
		t.Errorf("Chanda Wasiyyat = %+v, want 100.00", got["Chanda Wasiyyat"])
	}
	if _, ok := got["Chanda Aam"]; ok {
		t.Errorf("musi tidak boleh dapat Chanda Aam")
	}
	// kategori always tetap ada
	for _, name := range []string{"Jalsa Salana", "Chanda Khuddam", "Ijtema", "Tabligh"} {
		if _, ok := got[name]; !ok {
			t.Errorf("baris %s hilang untuk musi", name)
		}
	}
}

func TestComputeBudgetInvalidIncome(t *testing.T) {
	for _, income := range []float64{0, -100} {
		if _, err := ComputeBudget(income, false); !errors.Is(err, ErrInvalidIncome) {
			t.Errorf("income %v: expected ErrInvalidIncome, got %v", income, err)
		}
	}
}

func TestComputeBudgetRounding(t *testing.T) {
	// 1234.56 * 0.833% = 10.283...  → 10.28
	rows, err := ComputeBudget(1234.56, false)
	if err != nil {
		t.Fatalf("ComputeBudget: %v", err)
	}
	got := rowsByName(rows)
	if r := got["Jalsa Salana"]; r.Amount != 10.28 {
		t.Errorf("Jalsa Salana = %v, want 10.28", r.Amount)
	}
}
