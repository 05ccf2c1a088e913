// Package session implements the anonymous session scope. There is no user
// account behind it: the cookie value is a capability token, and whoever
// presents it owns the session's transactions.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// CookieName is the session cookie issued to clients.
	CookieName = "sessionId"

	// TTL is how long a minted cookie lives on the client.
	TTL = 7 * 24 * time.Hour

	localsKey = "session_id"
)

// Resolve returns the caller's session token, minting a new one and setting
// it on the response when the request carries none. A forged cookie that is
// not a well-formed token is treated as absent: session ids are uuid columns,
// and passing arbitrary strings through would error inside Postgres instead
// of matching zero rows.
func Resolve(c *fiber.Ctx) string {
	if token := c.Cookies(CookieName); ValidToken(token) {
		return token
	}

	token := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:    CookieName,
		Value:   token,
		Path:    "/",
		MaxAge:  int(TTL.Seconds()),
		Expires: time.Now().Add(TTL),
	})
	return token
}

// Require rejects requests without a session cookie before the handler runs.
// On success the token is stashed in locals for FromCtx.
func Require() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(CookieName)
		if !ValidToken(token) {
			return fiber.NewError(fiber.StatusUnauthorized, "missing session cookie")
		}
		c.Locals(localsKey, token)
		return c.Next()
	}
}

// ValidToken reports whether v is a well-formed session token (a UUID).
func ValidToken(v string) bool {
	if v == "" {
		return false
	}
	_, err := uuid.Parse(v)
	return err == nil
}

// FromCtx returns the session token stashed by Require.
func FromCtx(c *fiber.Ctx) string {
	if v, ok := c.Locals(localsKey).(string); ok {
		return v
	}
	return ""
}
