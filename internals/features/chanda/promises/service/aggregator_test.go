package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"jamaatku_backend/internals/features/chanda/promises/model"
)

func payment(amount float64, paidAt time.Time) model.PaymentModel {
	return model.PaymentModel{ID: uuid.New(), Amount: amount, PaidAt: paidAt}
}

func TestSummarizePromiseEmptyPayments(t *testing.T) {
	s := SummarizePromise(120, nil)
	if s.TotalPaid != 0 {
		t.Errorf("TotalPaid = %v, want 0", s.TotalPaid)
	}
	if s.Remaining != 120 {
		t.Errorf("Remaining = %v, want 120 (sama dengan promised)", s.Remaining)
	}
	if s.LastPaymentAt != nil {
		t.Errorf("LastPaymentAt harus nil untuk payment kosong")
	}
}

func TestTotalPaidPermutationInvariant(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a := payment(10.10, base)
	b := payment(20.25, base.AddDate(0, 1, 0))
	c := payment(19.65, base.AddDate(0, 2, 0))

	perms := [][]model.PaymentModel{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	want := TotalPaid(perms[0])
	for i, perm := range perms[1:] {
		if got := TotalPaid(perm); got != want {
			t.Errorf("permutasi %d: TotalPaid = %v, want %v", i+1, got, want)
		}
	}
	if want != 50.00 {
		t.Errorf("TotalPaid = %v, want 50.00", want)
	}
}

func TestSummarizePromiseRemaining(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	later := base.AddDate(0, 3, 0)
	s := SummarizePromise(100, []model.PaymentModel{
		payment(30, later),
		payment(20, base),
	})
	if s.TotalPaid != 50 {
		t.Errorf("TotalPaid = %v, want 50", s.TotalPaid)
	}
	if s.Remaining != 50 {
		t.Errorf("Remaining = %v, want 50", s.Remaining)
	}
	if s.LastPaymentAt == nil || !s.LastPaymentAt.Equal(later) {
		t.Errorf("LastPaymentAt = %v, want %v", s.LastPaymentAt, later)
	}
}

func TestSummarizeYears(t *testing.T) {
	userID := uuid.New()
	p2024 := model.PromiseModel{ID: uuid.New(), UserID: userID, ChandaTypeID: uuid.New(), Year: 2024, Amount: 75}
	p2025a := model.PromiseModel{ID: uuid.New(), UserID: userID, ChandaTypeID: uuid.New(), Year: 2025, Amount: 100}
	p2025b := model.PromiseModel{ID: uuid.New(), UserID: userID, ChandaTypeID: uuid.New(), Year: 2025, Amount: 50}

	now := time.Now().UTC()
	paymentsByPromise := map[string][]model.PaymentModel{
		p2025a.ID.String(): {payment(40, now)},
		p2024.ID.String():  {payment(75, now)},
	}

	years := SummarizeYears([]model.PromiseModel{p2024, p2025a, p2025b}, paymentsByPromise)
	if len(years) != 2 {
		t.Fatalf("len(years) = %d, want 2", len(years))
	}
	// tahun terbaru dulu
	if years[0].Year != 2025 || years[1].Year != 2024 {
		t.Fatalf("urutan tahun salah: %+v", years)
	}
	if years[0].Promised != 150 || years[0].Paid != 40 || years[0].Remaining != 110 {
		t.Errorf("2025 = %+v, want promised=150 paid=40 remaining=110", years[0])
	}
	if years[1].Promised != 75 || years[1].Paid != 75 || years[1].Remaining != 0 {
		t.Errorf("2024 = %+v, want promised=75 paid=75 remaining=0", years[1])
	}
}
