package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"wishlink/internal/config"
	"wishlink/internal/middleware"
	"wishlink/internal/service"
)

// WishlistHandler handles wishlist CRUD operations via JSON API. All
// routes run behind RequireAuth, so the principal is always an account.
type WishlistHandler struct {
	svc *service.Service
	cfg *config.Config
}

// NewWishlistHandler creates a new API wishlist handler.
func NewWishlistHandler(svc *service.Service, cfg *config.Config) *WishlistHandler {
	return &WishlistHandler{svc: svc, cfg: cfg}
}

// List returns the caller's wishlists, newest first.
func (h *WishlistHandler) List(c fiber.Ctx) error {
	wishlists, err := h.svc.ListForOwner(c.Context(), middleware.Principal(c))
	if err != nil {
		return jsonServiceError(c, err)
	}
	return jsonSuccess(c, wishlists)
}

// Create creates a wishlist with its initial items in one atomic call.
func (h *WishlistHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name  string            `json:"name"`
		Items []service.NewItem `json:"items"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	wishlist, err := h.svc.Create(c.Context(), middleware.Principal(c), body.Name, body.Items)
	if err != nil {
		return jsonServiceError(c, err)
	}

	return jsonCreated(c, fiber.Map{
		"wishlist":  wishlist,
		"share_url": h.cfg.PublicListURL(wishlist.ID.String()),
		"deep_link": h.cfg.DeepLinkURL(wishlist.ID.String()),
	})
}

// Get returns a single wishlist with its items, oldest first.
func (h *WishlistHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not found")
	}

	view, err := h.svc.Get(c.Context(), middleware.Principal(c), id)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return jsonSuccess(c, view)
}

// AddItem appends one item to a wishlist.
func (h *WishlistHandler) AddItem(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not found")
	}

	var body service.NewItem
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.AddItem(c.Context(), middleware.Principal(c), id, body)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return jsonCreated(c, item)
}

// RemoveItem deletes an item. Repeating the call reports not found.
func (h *WishlistHandler) RemoveItem(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("itemID"))
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not found")
	}

	if err := h.svc.RemoveItem(c.Context(), middleware.Principal(c), itemID); err != nil {
		return jsonServiceError(c, err)
	}
	return jsonSuccess(c, fiber.Map{"deleted": itemID})
}

// Rename updates the wishlist name.
func (h *WishlistHandler) Rename(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not found")
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.UpdateName(c.Context(), middleware.Principal(c), id, body.Name); err != nil {
		return jsonServiceError(c, err)
	}
	return jsonSuccess(c, fiber.Map{"renamed": id})
}

// Delete removes a wishlist and all of its items.
func (h *WishlistHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not found")
	}

	if err := h.svc.DeleteWishlist(c.Context(), middleware.Principal(c), id); err != nil {
		return jsonServiceError(c, err)
	}
	return jsonSuccess(c, fiber.Map{"deleted": id})
}
