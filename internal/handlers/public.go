package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"wishlink/internal/config"
	"wishlink/internal/metrics"
	"wishlink/internal/service"
	"wishlink/internal/validation"
)

// PublicHandler serves the anonymous read-only wishlist page. This is
// the one endpoint that never requires authentication: anyone holding
// the link can open it.
type PublicHandler struct {
	svc *service.Service
	cfg *config.Config
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(svc *service.Service, cfg *config.Config) *PublicHandler {
	return &PublicHandler{svc: svc, cfg: cfg}
}

// Show renders the shared wishlist identified by the id query param as
// a standalone HTML document. A missing id is a bad request; an
// unknown, malformed, or deleted id renders not found. The page is a
// snapshot and safe to cache briefly.
func (h *PublicHandler) Show(c fiber.Ctx) error {
	raw := c.Query("id")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).Render("public_error", fiber.Map{
			"Title":   "Missing wishlist ID",
			"Message": "This link is incomplete. Ask for a fresh share link.",
		}, "")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		metrics.RecordPublicRender(metrics.OutcomeNotFound)
		return h.notFound(c)
	}

	view, err := h.svc.PublicView(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			metrics.RecordPublicRender(metrics.OutcomeNotFound)
			return h.notFound(c)
		}
		return serviceError(err)
	}

	metrics.RecordPublicRender(metrics.OutcomeRendered)

	// Re-check stored URLs at render time so nothing but http(s) is
	// ever emitted as a link target.
	safeURL := func(u *string) string {
		if u != nil && validation.SafeLinkURL(*u) {
			return *u
		}
		return ""
	}

	items := make([]fiber.Map, len(view.Items))
	for i, item := range view.Items {
		items[i] = fiber.Map{
			"Name":        item.Name,
			"URL":         safeURL(item.URL),
			"Description": item.Description,
			"Price":       item.Price,
			"ImageURL":    safeURL(item.ImageURL),
		}
	}

	c.Set("Cache-Control", "public, max-age=300")
	return c.Render("public_list", fiber.Map{
		"Name":      view.Name,
		"OwnerName": view.OwnerName,
		"Items":     items,
		"SiteTitle": h.cfg.SiteTitle,
	}, "")
}

// notFound covers unknown and deleted wishlists alike, so the page
// does not reveal whether an id ever existed.
func (h *PublicHandler) notFound(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("public_error", fiber.Map{
		"Title":   "Wishlist not found",
		"Message": "This wishlist does not exist or has been deleted.",
	}, "")
}
