package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"wishlink/internal/config"
	"wishlink/internal/middleware"
	"wishlink/internal/models"
	"wishlink/internal/service"
)

// WishlistHandler handles the owner-facing wishlist pages.
type WishlistHandler struct {
	svc *service.Service
	cfg *config.Config
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(svc *service.Service, cfg *config.Config) *WishlistHandler {
	return &WishlistHandler{svc: svc, cfg: cfg}
}

// Index renders the home page. Authenticated owners see their own
// wishlists, newest first; visitors see the landing page.
func (h *WishlistHandler) Index(c fiber.Ctx) error {
	account, _ := c.Locals("account").(*models.Account)

	data := MergeBranding(fiber.Map{
		"Account": account,
	}, h.cfg)

	if account != nil {
		wishlists, err := h.svc.ListForOwner(c.Context(), middleware.Principal(c))
		if err != nil {
			return serviceError(err)
		}
		data["Wishlists"] = wishlists
	}

	return c.Render("index", data)
}

// New renders the create wishlist form.
func (h *WishlistHandler) New(c fiber.Ctx) error {
	return c.Render("create", MergeBranding(fiber.Map{
		"Account": c.Locals("account"),
	}, h.cfg))
}

// Create handles the create wishlist form: the wishlist name plus one
// or more item rows, persisted together or not at all.
func (h *WishlistHandler) Create(c fiber.Ctx) error {
	name := c.FormValue("name")
	items := collectItemRows(c)

	wishlist, err := h.svc.Create(c.Context(), middleware.Principal(c), name, items)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return htmxError(c, ve.Message)
		}
		return serviceError(err)
	}

	c.Set("HX-Redirect", "/wishlists/"+wishlist.ID.String())
	return c.SendStatus(fiber.StatusCreated)
}

// Show renders a single wishlist for its owner, items oldest first,
// with the share links for the public view.
func (h *WishlistHandler) Show(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	view, err := h.svc.Get(c.Context(), middleware.Principal(c), id)
	if err != nil {
		return serviceError(err)
	}

	return c.Render("wishlist", MergeBranding(fiber.Map{
		"Account":   c.Locals("account"),
		"Wishlist":  view.Wishlist,
		"Items":     view.Items,
		"ShareURL":  h.cfg.PublicListURL(view.Wishlist.ID.String()),
		"DeepLink":  h.cfg.DeepLinkURL(view.Wishlist.ID.String()),
		"ItemCount": len(view.Items),
	}, h.cfg))
}

// AddItem appends one item to an existing wishlist.
func (h *WishlistHandler) AddItem(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	in := service.NewItem{
		Name:        c.FormValue("item_name"),
		URL:         c.FormValue("item_url"),
		Description: c.FormValue("item_description"),
		Price:       c.FormValue("item_price"),
		ImageURL:    c.FormValue("item_image_url"),
	}

	if _, err := h.svc.AddItem(c.Context(), middleware.Principal(c), id, in); err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return htmxError(c, ve.Message)
		}
		return serviceError(err)
	}

	c.Set("HX-Redirect", "/wishlists/"+id.String())
	return c.SendStatus(fiber.StatusCreated)
}

// RemoveItem deletes a single item from a wishlist.
func (h *WishlistHandler) RemoveItem(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("itemID"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	if err := h.svc.RemoveItem(c.Context(), middleware.Principal(c), itemID); err != nil {
		return serviceError(err)
	}

	return c.SendString("")
}

// Rename updates the wishlist name.
func (h *WishlistHandler) Rename(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	if err := h.svc.UpdateName(c.Context(), middleware.Principal(c), id, c.FormValue("name")); err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return htmxError(c, ve.Message)
		}
		return serviceError(err)
	}

	c.Set("HX-Redirect", "/wishlists/"+id.String())
	return c.SendStatus(fiber.StatusOK)
}

// Delete removes a wishlist and all of its items.
func (h *WishlistHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	if err := h.svc.DeleteWishlist(c.Context(), middleware.Principal(c), id); err != nil {
		return serviceError(err)
	}

	c.Set("HX-Redirect", "/")
	return c.SendStatus(fiber.StatusOK)
}

// collectItemRows reads the repeated item_* form fields from the create
// form. Rows are matched by position; missing optional columns stay
// empty and are normalized downstream.
func collectItemRows(c fiber.Ctx) []service.NewItem {
	args := c.RequestCtx().PostArgs()

	names := args.PeekMulti("item_name")
	urls := args.PeekMulti("item_url")
	descriptions := args.PeekMulti("item_description")
	prices := args.PeekMulti("item_price")
	images := args.PeekMulti("item_image_url")

	at := func(vals [][]byte, i int) string {
		if i < len(vals) {
			return string(vals[i])
		}
		return ""
	}

	items := make([]service.NewItem, 0, len(names))
	for i := range names {
		items = append(items, service.NewItem{
			Name:        at(names, i),
			URL:         at(urls, i),
			Description: at(descriptions, i),
			Price:       at(prices, i),
			ImageURL:    at(images, i),
		})
	}
	return items
}
