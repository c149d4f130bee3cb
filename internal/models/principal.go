package models

import "github.com/google/uuid"

// Principal is the identity a request acts on behalf of: either an
// authenticated account or Anonymous. It is a runtime value, never
// persisted, and is re-derived from the session on every request.
type Principal struct {
	AccountID uuid.UUID
}

// Anonymous returns the principal for unauthenticated requests.
func Anonymous() Principal {
	return Principal{}
}

// AccountPrincipal returns a principal for an authenticated account.
func AccountPrincipal(id uuid.UUID) Principal {
	return Principal{AccountID: id}
}

// IsAnonymous reports whether the principal carries no account identity.
func (p Principal) IsAnonymous() bool {
	return p.AccountID == uuid.Nil
}
