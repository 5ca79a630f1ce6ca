package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "jamaatku_backend/internals/features/users/auth/model"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}

	ddl := []string{
		`DROP TABLE IF EXISTS token_blacklist`,
		`CREATE TABLE token_blacklist (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			token TEXT NOT NULL UNIQUE,
			expired_at DATETIME,
			created_at DATETIME,
			deleted_at DATETIME
		)`,
	}
	for _, q := range ddl {
		if err := db.Exec(q).Error; err != nil {
			t.Fatalf("DDL: %v", err)
		}
	}
	return db
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

// Login harus mengeluarkan csrf_token yang bisa dibaca JS, supaya
// logout via cookie bisa lolos cek double-submit.
func TestSetAuthCookiesIssuesCSRFToken(t *testing.T) {
	app := fiber.New()
	app.Post("/issue", func(c *fiber.Ctx) error {
		setAuthCookies(c, "at-dummy", "rt-dummy", time.Now().UTC())
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/issue", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	cookies := resp.Cookies()
	for _, name := range []string{"access_token", "refresh_token", "csrf_token"} {
		if findCookie(cookies, name) == nil {
			t.Fatalf("cookie %s tidak di-set", name)
		}
	}

	csrf := findCookie(cookies, "csrf_token")
	if csrf.Value == "" {
		t.Fatal("csrf_token kosong")
	}
	if csrf.HttpOnly {
		t.Fatal("csrf_token HTTPOnly, tidak bisa dibaca frontend")
	}
}

func TestLogoutCookieAuthRequiresCSRF(t *testing.T) {
	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		return Logout(nil, c)
	})

	cases := []struct {
		name   string
		cookie string
		header string
	}{
		{"tanpa header", "csrf_token=abc", ""},
		{"header beda", "csrf_token=abc", "xyz"},
		{"tanpa cookie csrf", "", "abc"},
	}
	for _, cs := range cases {
		req := httptest.NewRequest("POST", "/logout", nil)
		cookie := "access_token=opaque-token"
		if cs.cookie != "" {
			cookie += "; " + cs.cookie
		}
		req.Header.Set("Cookie", cookie)
		if cs.header != "" {
			req.Header.Set("X-CSRF-Token", cs.header)
		}

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request: %v", cs.name, err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusForbidden {
			t.Fatalf("%s: status = %d, mau %d", cs.name, resp.StatusCode, fiber.StatusForbidden)
		}
	}
}

func TestLogoutCookieAuthWithMatchingCSRF(t *testing.T) {
	db := setupAuthTestDB(t)

	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		return Logout(db, c)
	})

	req := httptest.NewRequest("POST", "/logout", nil)
	req.Header.Set("Cookie", "access_token=opaque-token; csrf_token=abc")
	req.Header.Set("X-CSRF-Token", "abc")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, mau %d", resp.StatusCode, fiber.StatusOK)
	}

	var n int64
	if err := db.Model(&authModel.TokenBlacklist{}).
		Where("token = ?", "opaque-token").Count(&n).Error; err != nil {
		t.Fatalf("hitung blacklist: %v", err)
	}
	if n != 1 {
		t.Fatalf("token tidak masuk blacklist: %d baris", n)
	}
}
