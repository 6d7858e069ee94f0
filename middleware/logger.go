package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func StructuredLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.New().String()

		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		status := c.Response().StatusCode()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		}

		if accountID := GetAccountID(c); accountID != 0 {
			fields = append(fields, zap.Int64("account_id", accountID))
		}

		switch {
		case err != nil:
			fields = append(fields, zap.Error(err))
			logger.Error("request error", fields...)
		case status >= 500:
			logger.Error("server error", fields...)
		case status >= 400:
			logger.Warn("client error", fields...)
		default:
			logger.Info("request completed", fields...)
		}

		return err
	}
}

// GetRequestID returns the id assigned by StructuredLogger, if any
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestID").(string)
	return id
}
