package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL  string
	StoreTimeout time.Duration // per-query deadline for store calls

	// Session storage (optional; in-memory when unset)
	RedisURL string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// OIDC
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Sharing
	ShareScheme string // Deep-link scheme for "open in app" links, e.g. "wishlink"

	// Site branding
	SiteTitle   string // env: SITE_TITLE, default: "Wishlink"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:  getEnv("DATABASE_URL", "postgres://localhost:5432/wishlink?sslmode=disable"),
		StoreTimeout: getEnvDuration("STORE_TIMEOUT", 5*time.Second),
		RedisURL:     getEnv("REDIS_URL", ""),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),

		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),
		ShareScheme:   getEnv("SHARE_SCHEME", "wishlink"),

		SiteTitle:   getEnv("SITE_TITLE", "Wishlink"),
		SiteTagline: getEnv("SITE_TAGLINE", "Share what you wish for"),
		SiteFooter:  getEnv("SITE_FOOTER", "Wishlink - Share what you wish for"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// PublicListURL returns the permanent share link for a wishlist id.
func (c *Config) PublicListURL(id string) string {
	return c.BaseURL + "/list?id=" + id
}

// DeepLinkURL returns the "open in app" link for a wishlist id. It
// carries no authorization; opening it still goes through the normal
// access checks.
func (c *Config) DeepLinkURL(id string) string {
	return c.ShareScheme + "://wishlist/" + id
}
