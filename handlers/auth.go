package handlers

import (
	"monplanting/app"
	"monplanting/middleware"
	"monplanting/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Register creates an account from username, email and password
func Register(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		account, err := a.AuthService.Register(req.Username, req.Email, req.Password)
		if err != nil {
			return respondError(a, c, "Failed to register account", err)
		}

		a.Logger.Info("account registered", zap.Int64("account_id", account.ID))
		return created(c, fiber.Map{"account": account})
	}
}

// Login checks credentials and opens a session
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if req.Username == "" || req.Password == "" {
			return badRequest(c, "username and password are required")
		}

		account, err := a.AuthService.Authenticate(req.Username, req.Password)
		if err != nil {
			a.Logger.Info("login failed", zap.String("username", req.Username), zap.Error(err))
			return respondError(a, c, "Failed to authenticate", err)
		}

		sess := a.SessionStore.Create(account)
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    sess.ID,
			Expires:  sess.ExpiresAt,
			HTTPOnly: true,
			Secure:   a.SecureCookie,
			SameSite: "Lax",
			Path:     "/",
		})

		return success(c, fiber.Map{
			"success":    true,
			"account":    account,
			"session_id": sess.ID,
			"expires_at": sess.ExpiresAt,
		})
	}
}

// Logout ends the current session, if any
func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessionID := middleware.SessionID(c); sessionID != "" {
			a.SessionStore.Delete(sessionID)
		}
		c.ClearCookie(middleware.SessionCookie)
		return success(c, fiber.Map{"success": true})
	}
}

// Me returns the account behind the current session
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		account, err := a.AuthService.GetAccount(middleware.GetAccountID(c))
		if err != nil {
			return respondError(a, c, "Failed to fetch account", err)
		}
		return success(c, fiber.Map{"account": account})
	}
}
