package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"wishlink/internal/config"
	"wishlink/internal/db"
	"wishlink/internal/models"
)

// ProfileHandler handles the account profile page.
type ProfileHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(database *db.DB, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{db: database, cfg: cfg}
}

// Show renders the profile page.
func (h *ProfileHandler) Show(c fiber.Ctx) error {
	account, ok := c.Locals("account").(*models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	return c.Render("profile", MergeBranding(fiber.Map{
		"Account":     account,
		"DisplayName": account.DisplayName(),
	}, h.cfg))
}

// UpdateName changes the display name shown on shared wishlist pages.
func (h *ProfileHandler) UpdateName(c fiber.Ctx) error {
	account, ok := c.Locals("account").(*models.Account)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return htmxError(c, "Display name cannot be empty")
	}
	if len(name) > 200 {
		return htmxError(c, "Display name must be at most 200 characters")
	}

	if err := h.db.UpdateAccountName(c.Context(), account.ID, name); err != nil {
		return err
	}

	c.Set("HX-Redirect", "/profile")
	return c.SendStatus(fiber.StatusOK)
}
