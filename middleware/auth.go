package middleware

import (
	"strings"

	"monplanting/session"

	"github.com/gofiber/fiber/v2"
)

const SessionCookie = "session_id"

// AuthRequired accepts a session id from the session cookie or an
// "Authorization: Bearer <session id>" header.
func AuthRequired(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := SessionID(c)
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization",
			})
		}

		sess := store.Get(sessionID)
		if sess == nil {
			c.ClearCookie(SessionCookie)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired session",
			})
		}
		store.Touch(sessionID)

		c.Locals("accountID", sess.AccountID)
		c.Locals("username", sess.Username)
		c.Locals("session", sess)
		return c.Next()
	}
}

// SessionID extracts the session id without validating it
func SessionID(c *fiber.Ctx) string {
	if id := c.Cookies(SessionCookie); id != "" {
		return id
	}

	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func GetAccountID(c *fiber.Ctx) int64 {
	accountID, ok := c.Locals("accountID").(int64)
	if !ok {
		return 0
	}
	return accountID
}

func GetUsername(c *fiber.Ctx) string {
	username, _ := c.Locals("username").(string)
	return username
}
