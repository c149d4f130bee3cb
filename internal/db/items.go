package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wishlink/internal/models"
)

// ItemOrder selects the deterministic read order for a wishlist's items.
// The owner view reads insertion order; the public view reads newest
// first. Ties on created_at break on id so the order is always stable.
type ItemOrder string

const (
	ItemOrderOldestFirst ItemOrder = "oldest_first"
	ItemOrderNewestFirst ItemOrder = "newest_first"
)

// itemColumns is the standard column list for item queries.
const itemColumns = `id, wishlist_id, name, url, description, price, image_url, created_at`

// scanItem scans a row into an Item struct.
func scanItem(row pgx.Row) (*models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ID,
		&item.WishlistID,
		&item.Name,
		&item.URL,
		&item.Description,
		&item.Price,
		&item.ImageURL,
		&item.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// scanItems scans multiple rows into a slice of Items.
func scanItems(rows pgx.Rows) ([]models.Item, error) {
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID,
			&item.WishlistID,
			&item.Name,
			&item.URL,
			&item.Description,
			&item.Price,
			&item.ImageURL,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// CreateItem inserts a single item into an existing wishlist. This is
// one atomic statement; concurrent adds to the same wishlist interleave
// safely without any application-level locking.
func (d *DB) CreateItem(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (wishlist_id, name, url, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := d.Pool.QueryRow(ctx, query,
		item.WishlistID,
		item.Name,
		item.URL,
		item.Description,
		item.Price,
		item.ImageURL,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return translateConstraint(err, ErrInvalidItemName)
	}
	return nil
}

// GetItemByID retrieves an item by its ID.
func (d *DB) GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return scanItem(d.Pool.QueryRow(ctx, query, id))
}

// GetItems retrieves all items of a wishlist in the requested order.
func (d *DB) GetItems(ctx context.Context, wishlistID uuid.UUID, order ItemOrder) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE wishlist_id = $1 `
	switch order {
	case ItemOrderNewestFirst:
		query += `ORDER BY created_at DESC, id DESC`
	default:
		query += `ORDER BY created_at ASC, id ASC`
	}

	rows, err := d.Pool.Query(ctx, query, wishlistID)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

// CountItems returns the number of items in a wishlist.
func (d *DB) CountItems(ctx context.Context, wishlistID uuid.UUID) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM items WHERE wishlist_id = $1`, wishlistID).Scan(&count)
	return count, err
}

// DeleteItem deletes an item by ID. Deleting an already-removed item
// reports ErrItemNotFound.
func (d *DB) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
