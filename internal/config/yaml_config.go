package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the optional config.yaml file.
// Limits are easier to review and version in YAML than env vars.
type YAMLConfig struct {
	Limits   LimitsConfig   `yaml:"limits"`
	Branding BrandingConfig `yaml:"branding"`
}

// LimitsConfig bounds user-supplied input.
type LimitsConfig struct {
	MaxItemsPerWishlist int `yaml:"max_items_per_wishlist"`
	MaxNameLength       int `yaml:"max_name_length"`
}

// BrandingConfig overrides the env-based site branding.
type BrandingConfig struct {
	SiteTitle   string `yaml:"site_title"`
	SiteTagline string `yaml:"site_tagline"`
	SiteFooter  string `yaml:"site_footer"`
	SiteLogoURL string `yaml:"site_logo_url"`
}

// LoadYAMLConfig loads the YAML configuration file. Path is determined
// by CONFIG_FILE env var, defaulting to "config.yaml". Returns nil
// without error if the file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply merges the YAML overrides into the env-based config.
func (y *YAMLConfig) Apply(cfg *Config) {
	if y == nil {
		return
	}
	if y.Branding.SiteTitle != "" {
		cfg.SiteTitle = y.Branding.SiteTitle
	}
	if y.Branding.SiteTagline != "" {
		cfg.SiteTagline = y.Branding.SiteTagline
	}
	if y.Branding.SiteFooter != "" {
		cfg.SiteFooter = y.Branding.SiteFooter
	}
	if y.Branding.SiteLogoURL != "" {
		cfg.SiteLogoURL = y.Branding.SiteLogoURL
	}
}
