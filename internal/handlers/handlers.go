package handlers

import (
	"errors"
	"html"

	"github.com/gofiber/fiber/v3"

	"wishlink/internal/config"
	"wishlink/internal/service"
)

// MergeBranding adds site branding data to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	data["SiteLogoURL"] = cfg.SiteLogoURL
	return data
}

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="p-3 rounded-lg bg-red-50 text-red-700 text-sm">` + html.EscapeString(message) + `</div>`,
	)
}

// serviceError maps the service error taxonomy onto fiber errors so the
// central error handler renders the right status. Validation messages
// pass through verbatim; denials stay generic.
func serviceError(err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return fiber.NewError(fiber.StatusBadRequest, ve.Message)
	case errors.Is(err, service.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "not found")
	case errors.Is(err, service.ErrNotOwner):
		return fiber.NewError(fiber.StatusForbidden, "you do not have access to this wishlist")
	case errors.Is(err, service.ErrStoreUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, "temporarily unavailable, please try again")
	default:
		return err
	}
}
