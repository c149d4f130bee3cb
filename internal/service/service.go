// Package service owns the wishlist aggregate lifecycle: a wishlist and
// its items form one consistency unit. Every operation authorizes the
// acting principal before touching the store, and every store call runs
// under a bounded timeout.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"wishlink/internal/authz"
	"wishlink/internal/db"
	"wishlink/internal/models"
	"wishlink/internal/validation"
)

// Validation limits. MaxItemsPerWishlist and name lengths can be raised
// or lowered through the YAML config.
const (
	DefaultMaxItemsPerWishlist = 100
	DefaultMaxNameLength       = 200
	DefaultStoreTimeout        = 5 * time.Second
)

// Limits bounds user-supplied input.
type Limits struct {
	MaxItemsPerWishlist int
	MaxNameLength       int
}

// DefaultLimits returns the built-in limits.
func DefaultLimits() Limits {
	return Limits{
		MaxItemsPerWishlist: DefaultMaxItemsPerWishlist,
		MaxNameLength:       DefaultMaxNameLength,
	}
}

// NewItem is the caller-supplied input for one item. Empty or
// whitespace-only optional fields are normalized to absent.
type NewItem struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}

// WishlistView is the owner-scoped read of a wishlist aggregate, items
// in insertion order.
type WishlistView struct {
	Wishlist models.Wishlist `json:"wishlist"`
	Items    []models.Item   `json:"items"`
}

// PublicWishlist is the anonymous-safe projection of a wishlist: the
// owner's display name, never the owner account id. Items are newest
// first.
type PublicWishlist struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	OwnerName string        `json:"owner_name"`
	Items     []models.Item `json:"items"`
}

// Service coordinates authorization, validation, and storage for the
// wishlist aggregate.
type Service struct {
	store   Store
	limits  Limits
	timeout time.Duration
}

// New creates a Service. A zero timeout falls back to the default.
func New(store Store, limits Limits, timeout time.Duration) *Service {
	if limits.MaxItemsPerWishlist <= 0 {
		limits.MaxItemsPerWishlist = DefaultMaxItemsPerWishlist
	}
	if limits.MaxNameLength <= 0 {
		limits.MaxNameLength = DefaultMaxNameLength
	}
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &Service{store: store, limits: limits, timeout: timeout}
}

// Create creates a wishlist together with its initial items, atomically:
// either the wishlist and every item persist, or none do. The creation
// flow requires at least one valid item; AddItem does not carry that
// minimum later.
func (s *Service) Create(ctx context.Context, owner models.Principal, name string, items []NewItem) (*models.Wishlist, error) {
	if owner.IsAnonymous() {
		return nil, ErrNotOwner
	}

	name = validation.TrimName(name)
	if name == "" {
		return nil, invalid("name", "Please enter a wishlist name")
	}
	if len(name) > s.limits.MaxNameLength {
		return nil, invalidf("name", "Wishlist name must be at most %d characters", s.limits.MaxNameLength)
	}
	if len(items) == 0 {
		return nil, invalid("items", "Please add at least one item")
	}
	if len(items) > s.limits.MaxItemsPerWishlist {
		return nil, invalidf("items", "A wishlist can hold at most %d items", s.limits.MaxItemsPerWishlist)
	}

	rows := make([]models.Item, len(items))
	for i, in := range items {
		item, err := s.normalizeItem(in)
		if err != nil {
			return nil, err
		}
		rows[i] = *item
	}

	wishlist := &models.Wishlist{OwnerID: owner.AccountID, Name: name}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()
	if err := s.store.CreateWishlistWithItems(ctx, wishlist, rows); err != nil {
		return nil, storeErr(err)
	}
	return wishlist, nil
}

// AddItem adds a single item to an existing wishlist.
func (s *Service) AddItem(ctx context.Context, principal models.Principal, wishlistID uuid.UUID, in NewItem) (*models.Item, error) {
	wishlist, err := s.authorize(ctx, principal, authz.ActionAddItem, wishlistID)
	if err != nil {
		return nil, err
	}

	item, err := s.normalizeItem(in)
	if err != nil {
		return nil, err
	}
	item.WishlistID = wishlist.ID

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	count, err := s.store.CountItems(ctx, wishlist.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	if count >= s.limits.MaxItemsPerWishlist {
		return nil, invalidf("items", "A wishlist can hold at most %d items", s.limits.MaxItemsPerWishlist)
	}

	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, storeErr(err)
	}
	return item, nil
}

// RemoveItem deletes an item. Removing an already-removed item reports
// ErrNotFound; deletion is irreversible, there is no soft-delete.
func (s *Service) RemoveItem(ctx context.Context, principal models.Principal, itemID uuid.UUID) error {
	lookupCtx, cancel := s.storeCtx(ctx)
	item, err := s.store.GetItemByID(lookupCtx, itemID)
	cancel()
	if err != nil {
		return storeErr(err)
	}

	if _, err := s.authorize(ctx, principal, authz.ActionRemoveItem, item.WishlistID); err != nil {
		return err
	}

	ctx, cancel = s.storeCtx(ctx)
	defer cancel()
	if err := s.store.DeleteItem(ctx, itemID); err != nil {
		return storeErr(err)
	}
	return nil
}

// DeleteWishlist deletes a wishlist and, by cascade, all its items.
// After this call the id is permanently dead for both the private and
// the public read path.
func (s *Service) DeleteWishlist(ctx context.Context, principal models.Principal, wishlistID uuid.UUID) error {
	if _, err := s.authorize(ctx, principal, authz.ActionDeleteWishlist, wishlistID); err != nil {
		return err
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()
	if err := s.store.DeleteWishlist(ctx, wishlistID); err != nil {
		return storeErr(err)
	}
	return nil
}

// UpdateName renames a wishlist.
func (s *Service) UpdateName(ctx context.Context, principal models.Principal, wishlistID uuid.UUID, name string) error {
	name = validation.TrimName(name)
	if name == "" {
		return invalid("name", "Please enter a wishlist name")
	}
	if len(name) > s.limits.MaxNameLength {
		return invalidf("name", "Wishlist name must be at most %d characters", s.limits.MaxNameLength)
	}

	if _, err := s.authorize(ctx, principal, authz.ActionUpdateName, wishlistID); err != nil {
		return err
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()
	if err := s.store.UpdateWishlistName(ctx, wishlistID, name); err != nil {
		return storeErr(err)
	}
	return nil
}

// Get loads a wishlist and its items for the owner, oldest first.
func (s *Service) Get(ctx context.Context, principal models.Principal, wishlistID uuid.UUID) (*WishlistView, error) {
	wishlist, err := s.authorize(ctx, principal, authz.ActionReadPrivate, wishlistID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()
	items, err := s.store.GetItems(ctx, wishlist.ID, db.ItemOrderOldestFirst)
	if err != nil {
		return nil, storeErr(err)
	}

	return &WishlistView{Wishlist: *wishlist, Items: items}, nil
}

// ListForOwner returns the principal's own wishlists, newest first.
func (s *Service) ListForOwner(ctx context.Context, principal models.Principal) ([]models.Wishlist, error) {
	if principal.IsAnonymous() {
		return nil, ErrNotOwner
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()
	wishlists, err := s.store.GetWishlistsByOwner(ctx, principal.AccountID)
	if err != nil {
		return nil, storeErr(err)
	}
	return wishlists, nil
}

// PublicView loads the anonymous projection of a wishlist: name, owner
// display name, and items newest first. It is a point-in-time snapshot
// and safe to serve to any caller.
func (s *Service) PublicView(ctx context.Context, wishlistID uuid.UUID) (*PublicWishlist, error) {
	wishlist, err := s.authorize(ctx, models.Anonymous(), authz.ActionReadPublic, wishlistID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	owner, err := s.store.GetAccountByID(ctx, wishlist.OwnerID)
	if err != nil {
		return nil, storeErr(err)
	}

	items, err := s.store.GetItems(ctx, wishlist.ID, db.ItemOrderNewestFirst)
	if err != nil {
		return nil, storeErr(err)
	}

	return &PublicWishlist{
		ID:        wishlist.ID,
		Name:      wishlist.Name,
		OwnerName: owner.DisplayName(),
		Items:     items,
	}, nil
}

// authorize loads the wishlist and evaluates the access decision for
// it. The decision is never cached; each call re-evaluates against the
// current principal.
func (s *Service) authorize(ctx context.Context, principal models.Principal, action authz.Action, wishlistID uuid.UUID) (*models.Wishlist, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	wishlist, err := s.store.GetWishlistByID(ctx, wishlistID)
	if err != nil && !errors.Is(err, db.ErrWishlistNotFound) {
		return nil, storeErr(err)
	}

	decision := authz.Authorize(principal, action, wishlist)
	if !decision.Allowed {
		switch decision.Reason {
		case authz.ReasonNotOwner:
			return nil, ErrNotOwner
		default:
			return nil, ErrNotFound
		}
	}
	return wishlist, nil
}

// normalizeItem validates and normalizes caller input for one item:
// the name is trimmed and must be non-empty, optional fields become
// absent when blank, and a present URL must be http(s).
func (s *Service) normalizeItem(in NewItem) (*models.Item, error) {
	name := validation.TrimName(in.Name)
	if name == "" {
		return nil, invalid("item_name", "Item name is required")
	}
	if len(name) > s.limits.MaxNameLength {
		return nil, invalidf("item_name", "Item name must be at most %d characters", s.limits.MaxNameLength)
	}

	itemURL := validation.NormalizeOptional(in.URL)
	if itemURL != nil {
		if ok, msg := validation.ValidateURL(*itemURL); !ok {
			return nil, invalid("item_url", msg)
		}
	}

	imageURL := validation.NormalizeOptional(in.ImageURL)
	if imageURL != nil {
		if ok, msg := validation.ValidateURL(*imageURL); !ok {
			return nil, invalid("item_image_url", msg)
		}
	}

	return &models.Item{
		Name:        name,
		URL:         itemURL,
		Description: validation.NormalizeOptional(in.Description),
		Price:       validation.NormalizeOptional(in.Price),
		ImageURL:    imageURL,
	}, nil
}

// storeCtx derives a bounded context for a store call so no operation
// blocks indefinitely on the backend.
func (s *Service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// storeErr translates store-level errors into the caller-facing
// taxonomy. Known sentinels become ErrNotFound; everything else is a
// retryable ErrStoreUnavailable.
func storeErr(err error) error {
	switch {
	case errors.Is(err, db.ErrWishlistNotFound),
		errors.Is(err, db.ErrItemNotFound),
		errors.Is(err, db.ErrAccountNotFound):
		return ErrNotFound
	case errors.Is(err, db.ErrInvalidItemName):
		return invalid("item_name", "Item name is required")
	case errors.Is(err, db.ErrInvalidWishlistName):
		return invalid("name", "Please enter a wishlist name")
	default:
		return errors.Join(ErrStoreUnavailable, err)
	}
}
