package models

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is a named collection of items with exactly one owner.
// The owner is fixed at creation and never changes.
type Wishlist struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
