package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"wishlink/internal/db"
	"wishlink/internal/models"
)

// AuthMiddleware resolves the acting principal from the session on
// every request. Nothing is cached between requests: the account is
// re-loaded so a logged-out or deleted account loses access immediately.
type AuthMiddleware struct {
	db *db.DB
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(database *db.DB) *AuthMiddleware {
	return &AuthMiddleware{db: database}
}

// RequireAuth ensures the request carries an authenticated account,
// redirecting to /login if not. The account is stored in c.Locals
// under "account".
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return c.Redirect().To("/login")
	}

	sub, _ := sess.Get("account_sub").(string)
	if sub == "" {
		sess.Set("redirect_after_login", c.OriginalURL())
		return c.Redirect().To("/login")
	}

	account, err := m.db.GetAccountBySub(c.Context(), sub)
	if err != nil {
		sess.Destroy()
		return c.Redirect().To("/login")
	}

	c.Locals("account", account)
	return c.Next()
}

// OptionalAuth loads the account if authenticated, but doesn't require
// authentication. Unauthenticated requests proceed as Anonymous.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return c.Next()
	}

	sub, _ := sess.Get("account_sub").(string)
	if sub == "" {
		return c.Next()
	}

	account, err := m.db.GetAccountBySub(c.Context(), sub)
	if err == nil {
		c.Locals("account", account)
	}

	return c.Next()
}

// Principal returns the acting principal for the request: the
// authenticated account when present, Anonymous otherwise.
func Principal(c fiber.Ctx) models.Principal {
	if account, ok := c.Locals("account").(*models.Account); ok {
		return models.AccountPrincipal(account.ID)
	}
	return models.Anonymous()
}
