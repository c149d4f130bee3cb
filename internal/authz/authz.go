// Package authz decides whether a principal may perform an action on a
// wishlist. It is a pure function over data the caller already loaded:
// no storage access, no caching. Callers must re-evaluate it on every
// operation because the active principal can change between requests.
package authz

import (
	"wishlink/internal/models"
)

// Action identifies an operation subject to authorization.
type Action string

const (
	ActionReadPublic     Action = "read_public"
	ActionReadPrivate    Action = "read_private"
	ActionAddItem        Action = "add_item"
	ActionRemoveItem     Action = "remove_item"
	ActionDeleteWishlist Action = "delete_wishlist"
	ActionUpdateName     Action = "update_name"
)

// Reason explains a denial.
type Reason string

const (
	ReasonNotFound Reason = "not_found"
	ReasonNotOwner Reason = "not_owner"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  Reason // set only when denied
}

// Allowed is the affirmative decision.
var Allowed = Decision{Allowed: true}

func denied(r Reason) Decision {
	return Decision{Reason: r}
}

// Authorize evaluates whether principal may perform action on wishlist.
// A nil wishlist means the target does not exist; that is reported as
// NotFound for every action so the public and private paths leak the
// same (absent) existence information.
//
// ActionReadPublic is the only action Anonymous may ever perform; every
// other action requires the authenticated owner.
func Authorize(principal models.Principal, action Action, wishlist *models.Wishlist) Decision {
	if wishlist == nil {
		return denied(ReasonNotFound)
	}

	if action == ActionReadPublic {
		return Allowed
	}

	if principal.IsAnonymous() || principal.AccountID != wishlist.OwnerID {
		return denied(ReasonNotOwner)
	}

	return Allowed
}
