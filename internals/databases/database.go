package databases

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jamaatku_backend/internals/configs"
)

var DB *gorm.DB

// =======================
// KONEKSI DATABASE
// =======================
func ConnectDB() {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=jamaatku&options=-c%%20statement_timeout%%3D3000",
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_NAME", "jamaatku"),
		getenv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: dsn,
		// pgx simple protocol: lebih ramah pooler eksternal (pgbouncer)
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:      configs.NewGormLogger(),
		PrepareStmt: false,
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek database: %v", err)
	}

	DB = db
	log.Println("✅ Database terkoneksi")
}

// =======================
// POOL TUNING
// =======================
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[ERROR] Gagal ambil sql.DB: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	log.Println("⚙️ Pool DB dituning (open=20 idle=10)")
}

// =======================
// WARM-UP (anti cold start)
// =======================
func WarmUpQueries() {
	go func() {
		sqlDB, err := DB.DB()
		if err != nil {
			return
		}
		start := time.Now()
		if err := sqlDB.Ping(); err != nil {
			log.Printf("[WARN] Warm-up ping gagal: %v", err)
			return
		}
		var one int
		_ = DB.Raw("SELECT 1").Scan(&one).Error
		log.Printf("🔥 Warm-up DB selesai dalam %s", time.Since(start))
	}()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
