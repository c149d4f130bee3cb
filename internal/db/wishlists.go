package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"wishlink/internal/models"
)

// wishlistColumns is the standard column list for wishlist queries.
const wishlistColumns = `id, owner_id, name, created_at`

// scanWishlist scans a row into a Wishlist struct.
func scanWishlist(row pgx.Row) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := row.Scan(
		&wishlist.ID,
		&wishlist.OwnerID,
		&wishlist.Name,
		&wishlist.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWishlistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// scanWishlists scans multiple rows into a slice of Wishlists.
func scanWishlists(rows pgx.Rows) ([]models.Wishlist, error) {
	defer rows.Close()

	var wishlists []models.Wishlist
	for rows.Next() {
		var wishlist models.Wishlist
		if err := rows.Scan(
			&wishlist.ID,
			&wishlist.OwnerID,
			&wishlist.Name,
			&wishlist.CreatedAt,
		); err != nil {
			return nil, err
		}
		wishlists = append(wishlists, wishlist)
	}

	return wishlists, rows.Err()
}

// CreateWishlistWithItems creates a wishlist and its initial items in a
// single transaction: either the wishlist and every item persist, or
// none do. A wishlist with zero items is never left behind on an
// item-insert failure.
func (d *DB) CreateWishlistWithItems(ctx context.Context, wishlist *models.Wishlist, items []models.Item) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO wishlists (owner_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, wishlist.OwnerID, wishlist.Name).Scan(&wishlist.ID, &wishlist.CreatedAt)
	if err != nil {
		return translateConstraint(err, ErrInvalidWishlistName)
	}

	for i := range items {
		items[i].WishlistID = wishlist.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO items (wishlist_id, name, url, description, price, image_url)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`, items[i].WishlistID,
			items[i].Name,
			items[i].URL,
			items[i].Description,
			items[i].Price,
			items[i].ImageURL,
		).Scan(&items[i].ID, &items[i].CreatedAt)
		if err != nil {
			return translateConstraint(err, ErrInvalidItemName)
		}
	}

	return tx.Commit(ctx)
}

// GetWishlistByID retrieves a wishlist by its ID.
func (d *DB) GetWishlistByID(ctx context.Context, id uuid.UUID) (*models.Wishlist, error) {
	query := `SELECT ` + wishlistColumns + ` FROM wishlists WHERE id = $1`
	return scanWishlist(d.Pool.QueryRow(ctx, query, id))
}

// GetWishlistsByOwner retrieves all wishlists owned by an account,
// newest first.
func (d *DB) GetWishlistsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Wishlist, error) {
	query := `
		SELECT ` + wishlistColumns + `
		FROM wishlists
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := d.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	return scanWishlists(rows)
}

// UpdateWishlistName updates a wishlist's display name.
func (d *DB) UpdateWishlistName(ctx context.Context, id uuid.UUID, name string) error {
	query := `UPDATE wishlists SET name = $1 WHERE id = $2`
	result, err := d.Pool.Exec(ctx, query, name, id)
	if err != nil {
		return translateConstraint(err, ErrInvalidWishlistName)
	}
	if result.RowsAffected() == 0 {
		return ErrWishlistNotFound
	}
	return nil
}

// DeleteWishlist deletes a wishlist by ID. Its items are removed by the
// cascading foreign key. Deleting an already-deleted wishlist reports
// ErrWishlistNotFound.
func (d *DB) DeleteWishlist(ctx context.Context, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM wishlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrWishlistNotFound
	}
	return nil
}

// translateConstraint maps a check-constraint violation to the given
// domain sentinel, passing other errors through unchanged.
func translateConstraint(err error, sentinel error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" {
		return sentinel
	}
	return err
}
