package controller

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jamaatku_backend/internals/features/organization/settings/model"
)

func setupCollectorTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}

	ddl := []string{
		`DROP TABLE IF EXISTS chanda_collectors`,
		`CREATE TABLE chanda_collectors (
			collector_id TEXT PRIMARY KEY,
			collector_shoba_name TEXT NOT NULL,
			collector_first_name TEXT NOT NULL,
			collector_last_name TEXT NOT NULL,
			collector_phone TEXT,
			collector_nizam TEXT,
			collector_period_start DATE NOT NULL,
			collector_period_end DATE NOT NULL,
			collector_created_at DATETIME,
			collector_updated_at DATETIME
		)`,
	}
	for _, q := range ddl {
		if err := db.Exec(q).Error; err != nil {
			t.Fatalf("DDL: %v", err)
		}
	}

	app := fiber.New()
	collectorController := NewCollectorController(db)
	collectors := app.Group("/collectors")
	collectors.Post("/", collectorController.CreateCollector)
	collectors.Put("/:id", collectorController.UpdateCollector)

	return app, db
}

func countCollectors(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.ChandaCollectorModel{}).Count(&n).Error; err != nil {
		t.Fatalf("hitung collectors: %v", err)
	}
	return n
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCreateCollectorInvalidPeriodRejected(t *testing.T) {
	app, db := setupCollectorTest(t)

	status := postJSON(t, app, "/collectors/", `{
		"shoba_name": "Maal",
		"first_name": "Karim",
		"last_name": "Ahmad",
		"period_start": "2025-06-01",
		"period_end": "2025-01-01"
	}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, mau %d", status, fiber.StatusUnprocessableEntity)
	}
	if n := countCollectors(t, db); n != 0 {
		t.Fatalf("collector tertulis padahal periode tidak valid: %d baris", n)
	}
}

func TestCreateCollectorMissingFieldsRejected(t *testing.T) {
	app, db := setupCollectorTest(t)

	status := postJSON(t, app, "/collectors/", `{
		"first_name": "Karim",
		"last_name": "Ahmad",
		"period_start": "2025-01-01",
		"period_end": "2025-12-31"
	}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, mau %d", status, fiber.StatusUnprocessableEntity)
	}
	if n := countCollectors(t, db); n != 0 {
		t.Fatalf("collector tertulis padahal shoba kosong: %d baris", n)
	}
}

func TestCreateCollectorBadDateRejected(t *testing.T) {
	app, db := setupCollectorTest(t)

	status := postJSON(t, app, "/collectors/", `{
		"shoba_name": "Maal",
		"first_name": "Karim",
		"last_name": "Ahmad",
		"period_start": "01.06.2025",
		"period_end": "2025-12-31"
	}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, mau %d", status, fiber.StatusBadRequest)
	}
	if n := countCollectors(t, db); n != 0 {
		t.Fatalf("collector tertulis padahal tanggal tidak valid: %d baris", n)
	}
}

func TestCreateCollectorValid(t *testing.T) {
	app, db := setupCollectorTest(t)

	status := postJSON(t, app, "/collectors/", `{
		"shoba_name": "Maal",
		"first_name": "Karim",
		"last_name": "Ahmad",
		"phone": "+4915112345678",
		"period_start": "2025-01-01",
		"period_end": "2025-12-31"
	}`)
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, mau %d", status, fiber.StatusCreated)
	}
	if n := countCollectors(t, db); n != 1 {
		t.Fatalf("jumlah collector = %d, mau 1", n)
	}
}

func TestUpdateCollectorInvalidPeriodKeepsRow(t *testing.T) {
	app, db := setupCollectorTest(t)

	if status := postJSON(t, app, "/collectors/", `{
		"shoba_name": "Maal",
		"first_name": "Karim",
		"last_name": "Ahmad",
		"period_start": "2025-01-01",
		"period_end": "2025-12-31"
	}`); status != fiber.StatusCreated {
		t.Fatalf("seed status = %d", status)
	}

	var existing model.ChandaCollectorModel
	if err := db.First(&existing).Error; err != nil {
		t.Fatalf("ambil collector: %v", err)
	}

	req := httptest.NewRequest("PUT", "/collectors/"+existing.ID.String(), bytes.NewBufferString(`{
		"shoba_name": "Maal",
		"first_name": "Karim",
		"last_name": "Ahmad",
		"period_start": "2026-06-01",
		"period_end": "2026-01-01"
	}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("PUT: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, mau %d", resp.StatusCode, fiber.StatusUnprocessableEntity)
	}

	var after model.ChandaCollectorModel
	if err := db.First(&after, "collector_id = ?", existing.ID).Error; err != nil {
		t.Fatalf("ambil ulang collector: %v", err)
	}
	if !after.PeriodEnd.Equal(existing.PeriodEnd) {
		t.Fatalf("period_end berubah padahal update tidak valid: %v", after.PeriodEnd)
	}
}
