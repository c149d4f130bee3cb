package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"wishlink/internal/service"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonCreated returns a 201 response with data wrapped in the standard envelope.
func jsonCreated(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// jsonServiceError maps the service error taxonomy onto JSON responses.
// Validation messages pass through; everything else stays generic.
func jsonServiceError(c fiber.Ctx, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return jsonError(c, fiber.StatusBadRequest, ve.Message)
	case errors.Is(err, service.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, service.ErrNotOwner):
		return jsonError(c, fiber.StatusForbidden, "you do not have access to this wishlist")
	case errors.Is(err, service.ErrStoreUnavailable):
		return jsonError(c, fiber.StatusServiceUnavailable, "temporarily unavailable, please try again")
	default:
		return jsonError(c, fiber.StatusInternalServerError, "internal error")
	}
}
