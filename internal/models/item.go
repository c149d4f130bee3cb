package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single entry in a wishlist. Items belong to exactly one
// wishlist and are deleted with it. Optional fields are nil when absent,
// never empty strings. Price and ImageURL are display-only passthrough
// fields for the public page.
type Item struct {
	ID          uuid.UUID `json:"id"`
	WishlistID  uuid.UUID `json:"wishlist_id"`
	Name        string    `json:"name"`
	URL         *string   `json:"url"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}
