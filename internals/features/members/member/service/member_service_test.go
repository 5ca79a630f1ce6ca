package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	memberModel "jamaatku_backend/internals/features/members/member/model"
	promiseModel "jamaatku_backend/internals/features/chanda/promises/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(0)"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	ddl := []string{
		`DROP TABLE IF EXISTS payments`,
		`DROP TABLE IF EXISTS promises`,
		`DROP TABLE IF EXISTS users`,
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

func seedMember(t *testing.T, db *gorm.DB, jamaatID string) memberModel.MemberModel {
	t.Helper()
	m := memberModel.MemberModel{
		JamaatID: jamaatID,
		Name:     "Mahmood",
		Surname:  "Ahmad",
		Email:    jamaatID + "@example.de",
		Password: "x",
		Gender:   "male",
		Role:     "user",
		IsActive: true,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return m
}

func TestDeleteMemberCascade(t *testing.T) {
	db := setupTestDB(t)
	m := seedMember(t, db, "35001")
	other := seedMember(t, db, "35002")

	typeID := uuid.New()
	p1 := promiseModel.PromiseModel{UserID: m.ID, ChandaTypeID: typeID, Year: 2025, Amount: 120}
	p2 := promiseModel.PromiseModel{UserID: m.ID, ChandaTypeID: uuid.New(), Year: 2025, Amount: 50}
	pOther := promiseModel.PromiseModel{UserID: other.ID, ChandaTypeID: typeID, Year: 2025, Amount: 80}
	for _, p := range []*promiseModel.PromiseModel{&p1, &p2, &pOther} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("seed promise: %v", err)
		}
	}
	for _, pay := range []promiseModel.PaymentModel{
		{PromiseID: p1.ID, Amount: 30},
		{PromiseID: p1.ID, Amount: 20},
		{PromiseID: p2.ID, Amount: 10},
		{PromiseID: pOther.ID, Amount: 40},
	} {
		if err := db.Create(&pay).Error; err != nil {
			t.Fatalf("seed payment: %v", err)
		}
	}

	if err := DeleteMemberCascade(db, m.ID); err != nil {
		t.Fatalf("DeleteMemberCascade: %v", err)
	}

	var memberCount, promiseCount, paymentCount int64
	db.Model(&memberModel.MemberModel{}).Where("id = ?", m.ID).Count(&memberCount)
	db.Model(&promiseModel.PromiseModel{}).Where("promise_user_id = ?", m.ID).Count(&promiseCount)
	db.Model(&promiseModel.PaymentModel{}).
		Where("payment_promise_id IN (?, ?)", p1.ID, p2.ID).
		Count(&paymentCount)

	if memberCount != 0 {
		t.Errorf("member masih ada setelah delete")
	}
	if promiseCount != 0 {
		t.Errorf("promise yatim: %d", promiseCount)
	}
	if paymentCount != 0 {
		t.Errorf("payment yatim: %d", paymentCount)
	}

	// data anggota lain tidak tersentuh
	var otherPromises, otherPayments int64
	db.Model(&promiseModel.PromiseModel{}).Where("promise_user_id = ?", other.ID).Count(&otherPromises)
	db.Model(&promiseModel.PaymentModel{}).Where("payment_promise_id = ?", pOther.ID).Count(&otherPayments)
	if otherPromises != 1 || otherPayments != 1 {
		t.Errorf("data anggota lain ikut terhapus (promises=%d payments=%d)", otherPromises, otherPayments)
	}
}

func TestDeleteMemberCascadeNotFound(t *testing.T) {
	db := setupTestDB(t)

	if err := DeleteMemberCascade(db, uuid.New()); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListMembersFilter(t *testing.T) {
	db := setupTestDB(t)
	a := seedMember(t, db, "35010")
	b := seedMember(t, db, "35011")
	db.Model(&memberModel.MemberModel{}).Where("id = ?", a.ID).Update("musi", true)
	db.Model(&memberModel.MemberModel{}).Where("id = ?", b.ID).Updates(map[string]any{"gender": "female", "name": "Amatul"})

	musi := true
	got, total, err := ListMembers(db, ListFilter{Musi: &musi}, 20, 0)
	if err != nil {
		t.Fatalf("ListMembers: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].ID != a.ID {
		t.Errorf("filter musi: total=%d len=%d", total, len(got))
	}

	got, total, err = ListMembers(db, ListFilter{Search: "3501"}, 20, 0)
	if err != nil {
		t.Fatalf("ListMembers search: %v", err)
	}
	if total != 2 {
		t.Errorf("search by jamaat_id prefix: total=%d", total)
	}

	got, total, err = ListMembers(db, ListFilter{Search: "amatul"}, 20, 0)
	if err != nil {
		t.Fatalf("ListMembers search name: %v", err)
	}
	if total != 1 || got[0].ID != b.ID {
		t.Errorf("search by name: total=%d", total)
	}
}
