package config

import "testing"

func TestPublicListURL(t *testing.T) {
	cfg := &Config{BaseURL: "https://wishlink.example.com"}

	got := cfg.PublicListURL("a1b2c3")
	want := "https://wishlink.example.com/list?id=a1b2c3"
	if got != want {
		t.Errorf("PublicListURL() = %q, want %q", got, want)
	}
}

func TestDeepLinkURL(t *testing.T) {
	cfg := &Config{ShareScheme: "wishlink"}

	got := cfg.DeepLinkURL("a1b2c3")
	want := "wishlink://wishlist/a1b2c3"
	if got != want {
		t.Errorf("DeepLinkURL() = %q, want %q", got, want)
	}
}

func TestYAMLConfigApply(t *testing.T) {
	cfg := &Config{SiteTitle: "Wishlink", SiteTagline: "Share what you wish for"}

	yamlCfg := &YAMLConfig{
		Branding: BrandingConfig{SiteTitle: "Gifts R Us"},
	}
	yamlCfg.Apply(cfg)

	if cfg.SiteTitle != "Gifts R Us" {
		t.Errorf("SiteTitle = %q, want override applied", cfg.SiteTitle)
	}
	if cfg.SiteTagline != "Share what you wish for" {
		t.Errorf("SiteTagline = %q, want unchanged", cfg.SiteTagline)
	}
}

func TestYAMLConfigApplyNil(t *testing.T) {
	cfg := &Config{SiteTitle: "Wishlink"}

	var yamlCfg *YAMLConfig
	yamlCfg.Apply(cfg)

	if cfg.SiteTitle != "Wishlink" {
		t.Errorf("SiteTitle = %q, want unchanged when no config file", cfg.SiteTitle)
	}
}
