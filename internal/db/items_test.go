package db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"wishlink/internal/models"
)

func createTestWishlist(t *testing.T, db *DB, ownerID uuid.UUID, name string, itemNames ...string) *models.Wishlist {
	t.Helper()

	items := make([]models.Item, len(itemNames))
	for i, n := range itemNames {
		items[i] = models.Item{Name: n}
	}

	wishlist := &models.Wishlist{OwnerID: ownerID, Name: name}
	if err := db.CreateWishlistWithItems(context.Background(), wishlist, items); err != nil {
		t.Fatalf("CreateWishlistWithItems() error = %v", err)
	}
	return wishlist
}

func TestCreateItem(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := createTestAccount(t, db, "item-sub")
	wishlist := createTestWishlist(t, db, owner.ID, "Gifts", "Starter")

	desc := "Noise cancelling"
	item := &models.Item{
		WishlistID:  wishlist.ID,
		Name:        "Headphones",
		Description: &desc,
	}
	if err := db.CreateItem(ctx, item); err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if item.ID == uuid.Nil {
		t.Error("CreateItem() did not set ID")
	}

	fetched, err := db.GetItemByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItemByID() error = %v", err)
	}
	if fetched.Description == nil || *fetched.Description != desc {
		t.Errorf("description = %v, want %q", fetched.Description, desc)
	}
	if fetched.URL != nil {
		t.Errorf("url = %v, want nil", fetched.URL)
	}
}

func TestCreateItem_BlankName(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := createTestAccount(t, db, "blank-sub")
	wishlist := createTestWishlist(t, db, owner.ID, "Gifts", "Starter")

	item := &models.Item{WishlistID: wishlist.ID, Name: "  "}
	if err := db.CreateItem(ctx, item); !errors.Is(err, ErrInvalidItemName) {
		t.Errorf("CreateItem() error = %v, want ErrInvalidItemName", err)
	}
}

func TestGetItems_Order(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := createTestAccount(t, db, "items-order-sub")
	wishlist := createTestWishlist(t, db, owner.ID, "Ordered")

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		item := &models.Item{WishlistID: wishlist.ID, Name: name}
		if err := db.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem(%q) error = %v", name, err)
		}
	}

	oldest, err := db.GetItems(ctx, wishlist.ID, ItemOrderOldestFirst)
	if err != nil {
		t.Fatalf("GetItems(oldest) error = %v", err)
	}
	if len(oldest) != 3 || oldest[0].Name != "Alpha" || oldest[2].Name != "Gamma" {
		t.Errorf("oldest-first order wrong: %v", itemNames(oldest))
	}

	newest, err := db.GetItems(ctx, wishlist.ID, ItemOrderNewestFirst)
	if err != nil {
		t.Fatalf("GetItems(newest) error = %v", err)
	}
	if len(newest) != 3 || newest[0].Name != "Gamma" || newest[2].Name != "Alpha" {
		t.Errorf("newest-first order wrong: %v", itemNames(newest))
	}
}

func TestDeleteItem(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := createTestAccount(t, db, "del-item-sub")
	wishlist := createTestWishlist(t, db, owner.ID, "Gifts", "Only Item")

	items, err := db.GetItems(ctx, wishlist.ID, ItemOrderOldestFirst)
	if err != nil {
		t.Fatalf("GetItems() error = %v", err)
	}

	if err := db.DeleteItem(ctx, items[0].ID); err != nil {
		t.Fatalf("DeleteItem() error = %v", err)
	}

	// Wishlist survives with zero items
	count, err := db.CountItems(ctx, wishlist.ID)
	if err != nil {
		t.Fatalf("CountItems() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountItems() = %d, want 0", count)
	}

	// Deleting again reports not found
	if err := db.DeleteItem(ctx, items[0].ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("DeleteItem() repeat error = %v, want ErrItemNotFound", err)
	}
}

func itemNames(items []models.Item) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}
