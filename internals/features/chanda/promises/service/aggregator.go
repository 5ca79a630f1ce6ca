package service

import (
	"time"

	"jamaatku_backend/internals/features/chanda/promises/model"
	helper "jamaatku_backend/internals/helpers"
)

/* =========================================================
   AGREGASI LEDGER
   remaining = promised - totalPaid; daftar payment kosong
   berarti remaining = promised.
   ========================================================= */

type PromiseSummary struct {
	Promised      float64    `json:"promised"`
	TotalPaid     float64    `json:"total_paid"`
	Remaining     float64    `json:"remaining"`
	LastPaymentAt *time.Time `json:"last_payment_at,omitempty"`
}

type YearSummary struct {
	Year      int     `json:"year"`
	Promised  float64 `json:"promised"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
}

// TotalPaid menjumlahkan seluruh payment (urutan tidak berpengaruh).
func TotalPaid(payments []model.PaymentModel) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return helper.Round2(sum)
}

func LastPaymentAt(payments []model.PaymentModel) *time.Time {
	var last *time.Time
	for i := range payments {
		t := payments[i].PaidAt
		if last == nil || t.After(*last) {
			last = &t
		}
	}
	return last
}

func SummarizePromise(promised float64, payments []model.PaymentModel) PromiseSummary {
	paid := TotalPaid(payments)
	return PromiseSummary{
		Promised:      helper.Round2(promised),
		TotalPaid:     paid,
		Remaining:     helper.Round2(promised - paid),
		LastPaymentAt: LastPaymentAt(payments),
	}
}

// SummarizeYears mengelompokkan promise + payment per tahun.
func SummarizeYears(promises []model.PromiseModel, paymentsByPromise map[string][]model.PaymentModel) []YearSummary {
	byYear := map[int]*YearSummary{}
	years := make([]int, 0)

	for i := range promises {
		p := &promises[i]
		ys, ok := byYear[p.Year]
		if !ok {
			ys = &YearSummary{Year: p.Year}
			byYear[p.Year] = ys
			years = append(years, p.Year)
		}
		ys.Promised += p.Amount
		ys.Paid += TotalPaid(paymentsByPromise[p.ID.String()])
	}

	// urut menurun (tahun terbaru dulu)
	for i := 0; i < len(years); i++ {
		for j := i + 1; j < len(years); j++ {
			if years[j] > years[i] {
				years[i], years[j] = years[j], years[i]
			}
		}
	}

	out := make([]YearSummary, 0, len(years))
	for _, y := range years {
		ys := byYear[y]
		ys.Promised = helper.Round2(ys.Promised)
		ys.Paid = helper.Round2(ys.Paid)
		ys.Remaining = helper.Round2(ys.Promised - ys.Paid)
		out = append(out, *ys)
	}
	return out
}
