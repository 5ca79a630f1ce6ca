package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	chandaTypeModel "jamaatku_backend/internals/features/chanda/chanda_types/model"
	"jamaatku_backend/internals/features/chanda/promises/model"
	memberModel "jamaatku_backend/internals/features/members/member/model"
	helper "jamaatku_backend/internals/helpers"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	ddl := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			jamaat_id TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			surname TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			jamaat TEXT,
			date_of_birth DATE,
			phone TEXT,
			address TEXT,
			profession TEXT,
			gender TEXT NOT NULL,
			musi BOOLEAN NOT NULL DEFAULT 0,
			role TEXT NOT NULL DEFAULT 'user',
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE chanda_types (
			chanda_type_id TEXT PRIMARY KEY,
			chanda_type_name TEXT UNIQUE NOT NULL,
			chanda_type_description TEXT,
			chanda_type_charity_end DATE,
			chanda_type_created_at DATETIME,
			chanda_type_updated_at DATETIME
		)`,
		`CREATE TABLE promises (
			promise_id TEXT PRIMARY KEY,
			promise_user_id TEXT NOT NULL,
			promise_chanda_type_id TEXT NOT NULL,
			promise_year INTEGER NOT NULL,
			promise_amount REAL NOT NULL,
			promise_due_date DATE,
			promise_created_at DATETIME,
			promise_updated_at DATETIME,
			UNIQUE (promise_user_id, promise_chanda_type_id, promise_year)
		)`,
		`CREATE TABLE payments (
			payment_id TEXT PRIMARY KEY,
			payment_promise_id TEXT NOT NULL,
			payment_amount REAL NOT NULL,
			payment_paid_at DATETIME NOT NULL,
			payment_created_at DATETIME,
			payment_updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("schema: %v", err)
		}
	}
	return db
}

func seedMember(t *testing.T, db *gorm.DB, jamaatID string, musi bool) memberModel.MemberModel {
	t.Helper()
	m := memberModel.MemberModel{
		JamaatID: jamaatID,
		Name:     "Nasir",
		Surname:  "Khan",
		Email:    jamaatID + "@example.de",
		Password: "x",
		Gender:   "male",
		Musi:     musi,
		Role:     "user",
		IsActive: true,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return m
}

func seedChandaType(t *testing.T, db *gorm.DB, name string) chandaTypeModel.ChandaTypeModel {
	t.Helper()
	ct := chandaTypeModel.ChandaTypeModel{Name: name}
	if err := db.Create(&ct).Error; err != nil {
		t.Fatalf("seed chanda type %s: %v", name, err)
	}
	return ct
}

func seedDefaultTypes(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, r := range CurrentRateTable() {
		seedChandaType(t, db, r.Name)
	}
}

func countPromises(db *gorm.DB, userID uuid.UUID) int64 {
	var n int64
	db.Model(&model.PromiseModel{}).Where("promise_user_id = ?", userID).Count(&n)
	return n
}

func countPayments(db *gorm.DB, promiseID uuid.UUID) int64 {
	var n int64
	db.Model(&model.PaymentModel{}).Where("payment_promise_id = ?", promiseID).Count(&n)
	return n
}

/* ============================
   PROMISE MANUAL
============================ */

func TestCreateManualPromiseDuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	m := seedMember(t, db, "40001", false)
	ct := seedChandaType(t, db, "Chanda Aam")

	first, err := CreateManualPromise(db, m.ID, ct.ID, 2025, 120, nil, 0)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	if _, err := CreateManualPromise(db, m.ID, ct.ID, 2025, 99, nil, 10); !errors.Is(err, ErrDuplicatePromise) {
		t.Fatalf("expected ErrDuplicatePromise, got %v", err)
	}

	// tidak ada yang tertulis: promise tetap 1, nominal asli, tanpa payment baru
	if n := countPromises(db, m.ID); n != 1 {
		t.Errorf("jumlah promise = %d, want 1", n)
	}
	var kept model.PromiseModel
	db.First(&kept, "promise_id = ?", first.ID)
	if kept.Amount != 120 {
		t.Errorf("nominal berubah: %v", kept.Amount)
	}
	if n := countPayments(db, first.ID); n != 0 {
		t.Errorf("payment tertulis padahal duplikat ditolak: %d", n)
	}

	// tahun lain tetap boleh
	if _, err := CreateManualPromise(db, m.ID, ct.ID, 2026, 99, nil, 0); err != nil {
		t.Fatalf("tahun lain harus boleh: %v", err)
	}
}

func TestCreateManualPromiseWithInitialPayment(t *testing.T) {
	db := setupTestDB(t)
	m := seedMember(t, db, "40002", false)
	ct := seedChandaType(t, db, "Jalsa Salana")

	p, err := CreateManualPromise(db, m.ID, ct.ID, 2025, 60, nil, 25)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n := countPayments(db, p.ID); n != 1 {
		t.Fatalf("payment awal tidak tersimpan: %d", n)
	}

	var pays []model.PaymentModel
	db.Where("payment_promise_id = ?", p.ID).Find(&pays)
	if pays[0].Amount != 25 {
		t.Errorf("nominal payment awal = %v, want 25", pays[0].Amount)
	}
}

/* ============================
   REPLACE TOTAL
============================ */

func TestReplacePaymentTotal(t *testing.T) {
	db := setupTestDB(t)
	m := seedMember(t, db, "40003", false)
	ct := seedChandaType(t, db, "Tabligh")

	p, err := CreateManualPromise(db, m.ID, ct.ID, 2025, 100, nil, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, amount := range []float64{10, 15, 25} {
		if _, err := AddPayment(db, p.ID, amount, time.Time{}); err != nil {
			t.Fatalf("AddPayment: %v", err)
		}
	}

	if err := ReplacePaymentTotal(db, p.ID, 80); err != nil {
		t.Fatalf("ReplacePaymentTotal: %v", err)
	}

	var pays []model.PaymentModel
	db.Where("payment_promise_id = ?", p.ID).Find(&pays)
	if len(pays) != 1 {
		t.Fatalf("jumlah payment = %d, want tepat 1", len(pays))
	}
	if pays[0].Amount != 80 {
		t.Errorf("nominal = %v, want 80", pays[0].Amount)
	}
}

func TestReplacePaymentTotalZeroClearsAll(t *testing.T) {
	db := setupTestDB(t)
	m := seedMember(t, db, "40004", false)
	ct := seedChandaType(t, db, "Ijtema")

	p, _ := CreateManualPromise(db, m.ID, ct.ID, 2025, 40, nil, 40)
	if err := ReplacePaymentTotal(db, p.ID, 0); err != nil {
		t.Fatalf("ReplacePaymentTotal(0): %v", err)
	}
	if n := countPayments(db, p.ID); n != 0 {
		t.Errorf("payment tersisa: %d", n)
	}
}

func TestReplacePaymentTotalErrors(t *testing.T) {
	db := setupTestDB(t)

	if err := ReplacePaymentTotal(db, uuid.New(), 50); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("promise tak ada: expected ErrRecordNotFound, got %v", err)
	}

	m := seedMember(t, db, "40005", false)
	ct := seedChandaType(t, db, "Chanda Khuddam")
	p, _ := CreateManualPromise(db, m.ID, ct.ID, 2025, 40, nil, 40)

	if err := ReplacePaymentTotal(db, p.ID, -1); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("total negatif: expected ErrInvalidAmount, got %v", err)
	}
	// payment lama tidak tersentuh saat ditolak
	if n := countPayments(db, p.ID); n != 1 {
		t.Errorf("payment berubah padahal input ditolak: %d", n)
	}
}

/* ============================
   DELETE CASCADE
============================ */

func TestDeletePromiseCascade(t *testing.T) {
	db := setupTestDB(t)
	m := seedMember(t, db, "40006", false)
	ct := seedChandaType(t, db, "Chanda Aam")

	p, _ := CreateManualPromise(db, m.ID, ct.ID, 2025, 100, nil, 30)
	if _, err := AddPayment(db, p.ID, 20, time.Time{}); err != nil {
		t.Fatalf("AddPayment: %v", err)
	}

	if err := DeletePromiseCascade(db, p.ID); err != nil {
		t.Fatalf("DeletePromiseCascade: %v", err)
	}

	if n := countPromises(db, m.ID); n != 0 {
		t.Errorf("promise masih ada: %d", n)
	}
	if n := countPayments(db, p.ID); n != 0 {
		t.Errorf("payment yatim: %d", n)
	}

	if err := DeletePromiseCascade(db, p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("delete kedua: expected ErrRecordNotFound, got %v", err)
	}
}

/* ============================
   BATCH KALKULATOR
============================ */

func TestCreateBudgetBatchHappyPath(t *testing.T) {
	db := setupTestDB(t)
	seedDefaultTypes(t, db)
	m := seedMember(t, db, "40007", false)

	created, err := CreateBudgetBatch(db, m.ID, 2025, 1000, m.Musi)
	if err != nil {
		t.Fatalf("CreateBudgetBatch: %v", err)
	}
	if len(created) != 5 {
		t.Fatalf("jumlah promise = %d, want 5 (non-musi)", len(created))
	}

	var sum float64
	for _, p := range created {
		sum += p.Amount
	}
	// 62.50 + 8.33 + 10.00 + 2.08 + 2.00
	if helper.Round2(sum) != 84.91 {
		t.Errorf("total nominal = %v, want 84.91", sum)
	}
}

func TestCreateBudgetBatchViolationListsAllNames(t *testing.T) {
	db := setupTestDB(t)
	m := seedMember(t, db, "40008", false)

	// hanya sebagian kategori terdaftar
	aam := seedChandaType(t, db, "Chanda Aam")
	seedChandaType(t, db, "Jalsa Salana")
	seedChandaType(t, db, "Tabligh")
	// "Chanda Khuddam" dan "Ijtema" sengaja tidak dibuat

	// dan satu kategori sudah punya promise tahun target
	if _, err := CreateManualPromise(db, m.ID, aam.ID, 2025, 10, nil, 0); err != nil {
		t.Fatalf("seed promise: %v", err)
	}
	before := countPromises(db, m.ID)

	_, err := CreateBudgetBatch(db, m.ID, 2025, 1000, m.Musi)
	var violation *BatchViolation
	if !errors.As(err, &violation) {
		t.Fatalf("expected *BatchViolation, got %v", err)
	}

	if len(violation.MissingTypes) != 2 {
		t.Errorf("MissingTypes = %v, want 2 nama", violation.MissingTypes)
	}
	if len(violation.Duplicates) != 1 || violation.Duplicates[0] != "Chanda Aam" {
		t.Errorf("Duplicates = %v, want [Chanda Aam]", violation.Duplicates)
	}

	// tidak ada yang tertulis
	if after := countPromises(db, m.ID); after != before {
		t.Errorf("batch menulis sebagian: before=%d after=%d", before, after)
	}
}

func TestCreateBudgetBatchInvalidIncome(t *testing.T) {
	db := setupTestDB(t)
	m := seedMember(t, db, "40009", false)

	if _, err := CreateBudgetBatch(db, m.ID, 2025, 0, false); !errors.Is(err, ErrInvalidIncome) {
		t.Fatalf("expected ErrInvalidIncome, got %v", err)
	}
}

/* ============================
   LEDGER
============================ */

func TestGetMemberLedger(t *testing.T) {
	db := setupTestDB(t)
	m := seedMember(t, db, "40010", false)
	aam := seedChandaType(t, db, "Chanda Aam")
	jalsa := seedChandaType(t, db, "Jalsa Salana")

	p1, _ := CreateManualPromise(db, m.ID, aam.ID, 2025, 120, nil, 50)
	if _, err := CreateManualPromise(db, m.ID, jalsa.ID, 2024, 30, nil, 30); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ledger, err := GetMemberLedger(db, "40010")
	if err != nil {
		t.Fatalf("GetMemberLedger: %v", err)
	}
	if ledger.Member.ID != m.ID {
		t.Errorf("member salah")
	}
	if len(ledger.Promises) != 2 {
		t.Fatalf("jumlah promise = %d, want 2", len(ledger.Promises))
	}

	// urut tahun menurun
	if ledger.Promises[0].Promise.Year != 2025 {
		t.Errorf("promise pertama tahun %d, want 2025", ledger.Promises[0].Promise.Year)
	}
	if ledger.Promises[0].TypeName != "Chanda Aam" {
		t.Errorf("nama kategori = %q", ledger.Promises[0].TypeName)
	}
	if got := ledger.Promises[0].Summary; got.TotalPaid != 50 || got.Remaining != 70 {
		t.Errorf("summary %s: %+v", p1.ID, got)
	}

	if len(ledger.Years) != 2 || ledger.Years[0].Year != 2025 || ledger.Years[1].Remaining != 0 {
		t.Errorf("agregat tahun salah: %+v", ledger.Years)
	}
}

func TestGetMemberLedgerNotFound(t *testing.T) {
	db := setupTestDB(t)
	if _, err := GetMemberLedger(db, "99999"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
