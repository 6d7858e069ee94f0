package handlers

import (
	"errors"
	"strconv"

	"monplanting/app"
	"monplanting/middleware"
	"monplanting/services"
	"monplanting/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var details validator.ValidationErrors
	if errors.As(err, &details) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}
	return badRequest(c, err.Error())
}

// respondError maps service error kinds to HTTP statuses. Anything it does
// not recognise is logged and reported as a 500 with the given message.
func respondError(a *app.App, c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return validationError(c, err)
	case errors.Is(err, services.ErrAuthenticationFailed):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": services.ErrAuthenticationFailed.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateIdentity):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	a.Logger.Error("server error",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("message", message),
		zap.Error(err),
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// paramID reads a positive integer path parameter
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
