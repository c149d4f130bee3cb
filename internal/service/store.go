package service

import (
	"context"

	"github.com/google/uuid"

	"wishlink/internal/db"
	"wishlink/internal/models"
)

// Store is the data-access interface the aggregate service depends on.
// *db.DB satisfies it in production; tests substitute an in-memory
// implementation so store faults can be injected.
type Store interface {
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)

	CreateWishlistWithItems(ctx context.Context, wishlist *models.Wishlist, items []models.Item) error
	GetWishlistByID(ctx context.Context, id uuid.UUID) (*models.Wishlist, error)
	GetWishlistsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Wishlist, error)
	UpdateWishlistName(ctx context.Context, id uuid.UUID, name string) error
	DeleteWishlist(ctx context.Context, id uuid.UUID) error

	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	GetItems(ctx context.Context, wishlistID uuid.UUID, order db.ItemOrder) ([]models.Item, error)
	CountItems(ctx context.Context, wishlistID uuid.UUID) (int, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
