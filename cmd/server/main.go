package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"wishlink/internal/config"
	"wishlink/internal/db"
	"wishlink/internal/metrics"
	"wishlink/internal/server"
	"wishlink/internal/service"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Optional YAML overrides for limits and branding
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	yamlCfg.Apply(cfg)

	limits := service.DefaultLimits()
	if yamlCfg != nil {
		if yamlCfg.Limits.MaxItemsPerWishlist > 0 {
			limits.MaxItemsPerWishlist = yamlCfg.Limits.MaxItemsPerWishlist
		}
		if yamlCfg.Limits.MaxNameLength > 0 {
			limits.MaxNameLength = yamlCfg.Limits.MaxNameLength
		}
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Register the Prometheus collector for public render counts
	metrics.Init(database)

	svc := service.New(database, limits, cfg.StoreTimeout)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, svc); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
