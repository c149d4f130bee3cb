package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"wishlink/internal/models"
)

// UpsertAccount creates or updates an account based on its OIDC subject.
func (d *DB) UpsertAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (sub, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (sub) DO UPDATE SET
			email = EXCLUDED.email,
			updated_at = NOW()
		RETURNING id, name, created_at, updated_at
	`

	return d.Pool.QueryRow(ctx, query,
		account.Sub,
		account.Email,
		account.Name,
	).Scan(&account.ID, &account.Name, &account.CreatedAt, &account.UpdatedAt)
}

// GetAccountBySub retrieves an account by its OIDC subject identifier.
func (d *DB) GetAccountBySub(ctx context.Context, sub string) (*models.Account, error) {
	query := `
		SELECT id, sub, email, name, created_at, updated_at
		FROM accounts WHERE sub = $1
	`
	return scanAccount(d.Pool.QueryRow(ctx, query, sub))
}

// GetAccountByID retrieves an account by its ID.
func (d *DB) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `
		SELECT id, sub, email, name, created_at, updated_at
		FROM accounts WHERE id = $1
	`
	return scanAccount(d.Pool.QueryRow(ctx, query, id))
}

// UpdateAccountName updates the display name for an account.
func (d *DB) UpdateAccountName(ctx context.Context, id uuid.UUID, name string) error {
	query := `UPDATE accounts SET name = $1, updated_at = NOW() WHERE id = $2`
	result, err := d.Pool.Exec(ctx, query, name, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// DeleteAccount deletes an account. All owned wishlists and their items
// are removed by the cascading foreign keys.
func (d *DB) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Sub,
		&account.Email,
		&account.Name,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
