package db

import "errors"

// Domain-level database error sentinels.
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Wishlist errors
	ErrWishlistNotFound    = errors.New("wishlist not found")
	ErrInvalidWishlistName = errors.New("wishlist name must not be blank")

	// Item errors
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidItemName = errors.New("item name must not be blank")
)
