package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wishlink/internal/db"
	"wishlink/internal/handlers"
	"wishlink/internal/handlers/api"
	"wishlink/internal/middleware"
	"wishlink/internal/service"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, svc *service.Service) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(database)

	// Initialize handlers
	wishlistHandler := handlers.NewWishlistHandler(svc, s.Cfg)
	publicHandler := handlers.NewPublicHandler(svc, s.Cfg)
	profileHandler := handlers.NewProfileHandler(database, s.Cfg)
	apiWishlistHandler := api.NewWishlistHandler(svc, s.Cfg)
	apiHealthHandler := api.NewHealthHandler(database)

	// Auth routes - OIDC is required for the owner surface
	if s.Cfg.OIDCIssuer == "" {
		log.Fatal("OIDC_ISSUER is required. Wishlist owners must be authenticated.")
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
	if err != nil {
		return err
	}

	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)

	s.App.Get("/login", func(c fiber.Ctx) error {
		return c.Render("login", handlers.MergeBranding(fiber.Map{}, s.Cfg))
	})

	// Public share page - the only wishlist route that never requires
	// authentication. Anyone holding the link may view.
	s.App.Get("/list", publicHandler.Show)

	// Home shows the visitor landing page or the owner's wishlists
	s.App.Get("/", authMiddleware.OptionalAuth, wishlistHandler.Index)

	// Owner routes - always require authentication
	s.App.Get("/new", authMiddleware.RequireAuth, wishlistHandler.New)
	s.App.Post("/wishlists", authMiddleware.RequireAuth, wishlistHandler.Create)
	s.App.Get("/wishlists/:id", authMiddleware.RequireAuth, wishlistHandler.Show)
	s.App.Post("/wishlists/:id/items", authMiddleware.RequireAuth, wishlistHandler.AddItem)
	s.App.Delete("/wishlists/:id/items/:itemID", authMiddleware.RequireAuth, wishlistHandler.RemoveItem)
	s.App.Put("/wishlists/:id/name", authMiddleware.RequireAuth, wishlistHandler.Rename)
	s.App.Delete("/wishlists/:id", authMiddleware.RequireAuth, wishlistHandler.Delete)
	s.App.Get("/profile", authMiddleware.RequireAuth, profileHandler.Show)
	s.App.Post("/profile/name", authMiddleware.RequireAuth, profileHandler.UpdateName)

	// JSON API routes
	apiGroup := s.App.Group("/api/v1")
	apiGroup.Get("/health", apiHealthHandler.Check)
	apiGroup.Get("/wishlists", authMiddleware.RequireAuth, apiWishlistHandler.List)
	apiGroup.Post("/wishlists", authMiddleware.RequireAuth, apiWishlistHandler.Create)
	apiGroup.Get("/wishlists/:id", authMiddleware.RequireAuth, apiWishlistHandler.Get)
	apiGroup.Put("/wishlists/:id/name", authMiddleware.RequireAuth, apiWishlistHandler.Rename)
	apiGroup.Delete("/wishlists/:id", authMiddleware.RequireAuth, apiWishlistHandler.Delete)
	apiGroup.Post("/wishlists/:id/items", authMiddleware.RequireAuth, apiWishlistHandler.AddItem)
	apiGroup.Delete("/wishlists/:id/items/:itemID", authMiddleware.RequireAuth, apiWishlistHandler.RemoveItem)

	// Prometheus metrics
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
