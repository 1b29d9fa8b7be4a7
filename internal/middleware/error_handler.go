package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/CFBruna/fullstack-product-manager/internal/apperrors"
)

// ErrorHandler is the single point where every failure in the request
// pipeline is normalized into a uniform JSON error response. It is installed
// as the Fiber app's ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(fiber.Map{
			"status":  "error",
			"message": appErr.Message,
		})
	}

	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation error",
			"errors":  valErr.Fields,
		})
	}

	// Router-produced errors (unknown route, method not allowed) keep their
	// code but take the same response shape as everything else.
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"status":  "error",
			"message": fiberErr.Message,
		})
	}

	log.Printf("Unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": "Internal Server Error",
	})
}
