package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* =========================================================
   TOKEN HELPERS
   Urutan pengambilan access token: cookie → locals → header.
   ========================================================= */

func GetRawAccessToken(c *fiber.Ctx) string {
	if tok := c.Cookies("access_token"); tok != "" {
		return tok
	}
	if v, ok := c.Locals("access_token").(string); ok && v != "" {
		return v
	}
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return c.Cookies("refresh_token")
}

// CheckCSRFCookieHeader memvalidasi double-submit cookie:
// nilai cookie csrf_token harus sama dengan header X-CSRF-Token.
// Hanya relevan untuk request yang autentikasinya via cookie.
func CheckCSRFCookieHeader(c *fiber.Ctx) bool {
	cookie := c.Cookies("csrf_token")
	header := c.Get("X-CSRF-Token")
	if cookie == "" || header == "" {
		return false
	}
	return cookie == header
}
