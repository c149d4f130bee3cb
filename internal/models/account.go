package models

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a wishlist owner authenticated via OIDC.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Sub       string    `json:"sub"` // OIDC subject identifier
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the name shown on public pages, falling back to
// "Anonymous" when the account never set one.
func (a *Account) DisplayName() string {
	if a.Name == "" {
		return "Anonymous"
	}
	return a.Name
}
