package util

import (
	"cinex_api/configs"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const TokenCookieName = "cinex_token"

// AttachTokenCookie sets the session cookie. HTTPOnly keeps it away from
// page scripts; Secure is forced on in production.
func AttachTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(configs.GetConfigs().AccessTokenExpire.Seconds()),
		HTTPOnly: true,
		Secure:   configs.GetConfigs().CookieSecure,
		SameSite: configs.GetConfigs().CookieSameSite,
	})
}

// ClearTokenCookie overwrites the session cookie with an empty, already
// expired one so clients drop it immediately.
func ClearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   configs.GetConfigs().CookieSecure,
		SameSite: configs.GetConfigs().CookieSameSite,
	})
}

// ExtractToken reads the session token from the cookie, falling back to
// the Authorization header so non-browser clients can authenticate.
func ExtractToken(c *fiber.Ctx) string {
	token := c.Cookies(TokenCookieName, "")
	if token != "" {
		return token
	}

	authHeader := c.Get(fiber.HeaderAuthorization, "")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
