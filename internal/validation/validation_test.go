package validation

import "testing"

func TestTrimName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Watch", "Watch"},
		{"surrounding spaces", "  Watch  ", "Watch"},
		{"tabs and newlines", "\tWatch\n", "Watch"},
		{"only whitespace", "   ", ""},
		{"empty", "", ""},
		{"internal spaces kept", "  Noise Cancelling Headphones ", "Noise Cancelling Headphones"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimName(tt.input); got != tt.expected {
				t.Errorf("TrimName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeOptional(t *testing.T) {
	if got := NormalizeOptional(""); got != nil {
		t.Errorf("NormalizeOptional(\"\") = %q, want nil", *got)
	}
	if got := NormalizeOptional("   "); got != nil {
		t.Errorf("NormalizeOptional(whitespace) = %q, want nil", *got)
	}
	if got := NormalizeOptional("  some text  "); got == nil || *got != "some text" {
		t.Errorf("NormalizeOptional trimmed = %v, want \"some text\"", got)
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{"valid http", "http://example.com", true},
		{"valid https", "https://example.com/path?q=1", true},
		{"empty", "", false},
		{"javascript scheme", "javascript:alert(1)", false},
		{"data scheme", "data:text/html,<script>alert(1)</script>", false},
		{"vbscript scheme", "vbscript:msgbox(1)", false},
		{"no scheme", "example.com", false},
		{"no host", "https://", false},
		{"ftp scheme", "ftp://example.com/file", false},
		{"case insensitive scheme", "HTTPS://example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) = %v (%q), want valid=%v", tt.url, valid, msg, tt.valid)
			}
			if !valid && msg == "" {
				t.Errorf("ValidateURL(%q) invalid but no message", tt.url)
			}
		})
	}
}
