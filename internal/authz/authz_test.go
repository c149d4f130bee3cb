package authz

import (
	"testing"

	"github.com/google/uuid"

	"wishlink/internal/models"
)

var mutatingActions = []Action{
	ActionReadPrivate,
	ActionAddItem,
	ActionRemoveItem,
	ActionDeleteWishlist,
	ActionUpdateName,
}

func TestAuthorize_MissingWishlist(t *testing.T) {
	owner := models.AccountPrincipal(uuid.New())

	for _, action := range append([]Action{ActionReadPublic}, mutatingActions...) {
		d := Authorize(owner, action, nil)
		if d.Allowed {
			t.Errorf("Authorize(%s, nil) allowed, want denied", action)
		}
		if d.Reason != ReasonNotFound {
			t.Errorf("Authorize(%s, nil) reason = %q, want %q", action, d.Reason, ReasonNotFound)
		}
	}
}

func TestAuthorize_ReadPublic(t *testing.T) {
	ownerID := uuid.New()
	wishlist := &models.Wishlist{ID: uuid.New(), OwnerID: ownerID}

	principals := map[string]models.Principal{
		"anonymous": models.Anonymous(),
		"owner":     models.AccountPrincipal(ownerID),
		"stranger":  models.AccountPrincipal(uuid.New()),
	}

	for name, p := range principals {
		if d := Authorize(p, ActionReadPublic, wishlist); !d.Allowed {
			t.Errorf("Authorize(%s, read_public) denied with %q, want allowed", name, d.Reason)
		}
	}
}

func TestAuthorize_OwnerOnlyActions(t *testing.T) {
	ownerID := uuid.New()
	wishlist := &models.Wishlist{ID: uuid.New(), OwnerID: ownerID}

	for _, action := range mutatingActions {
		if d := Authorize(models.AccountPrincipal(ownerID), action, wishlist); !d.Allowed {
			t.Errorf("Authorize(owner, %s) denied with %q, want allowed", action, d.Reason)
		}

		if d := Authorize(models.AccountPrincipal(uuid.New()), action, wishlist); d.Allowed || d.Reason != ReasonNotOwner {
			t.Errorf("Authorize(stranger, %s) = %+v, want denied NotOwner", action, d)
		}

		if d := Authorize(models.Anonymous(), action, wishlist); d.Allowed || d.Reason != ReasonNotOwner {
			t.Errorf("Authorize(anonymous, %s) = %+v, want denied NotOwner", action, d)
		}
	}
}

func TestAuthorize_NoDecisionCaching(t *testing.T) {
	// The same wishlist must produce fresh decisions when the principal
	// changes, e.g. after a log-out between two requests.
	ownerID := uuid.New()
	wishlist := &models.Wishlist{ID: uuid.New(), OwnerID: ownerID}

	if d := Authorize(models.AccountPrincipal(ownerID), ActionAddItem, wishlist); !d.Allowed {
		t.Fatalf("owner denied: %+v", d)
	}
	if d := Authorize(models.Anonymous(), ActionAddItem, wishlist); d.Allowed {
		t.Fatalf("anonymous allowed after owner was allowed: %+v", d)
	}
}
