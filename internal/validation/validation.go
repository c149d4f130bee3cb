package validation

import (
	"net/url"
	"strings"
)

// TrimName normalizes a user-supplied name by trimming surrounding
// whitespace. The result may be empty, which callers must reject.
func TrimName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeOptional trims an optional free-text field and converts
// empty or whitespace-only input to absent (nil), never storing an
// empty string.
func NormalizeOptional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ValidateURL checks that a URL is parseable and uses an allowed scheme
// (http/https only). This rejects javascript:, data:, vbscript:, and
// other dangerous schemes before they can reach a rendered page.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// SafeLinkURL reports whether a stored URL may be emitted as an
// outbound link on a public page.
func SafeLinkURL(urlStr string) bool {
	ok, _ := ValidateURL(urlStr)
	return ok
}
