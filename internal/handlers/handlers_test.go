package handlers

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v3"

	"wishlink/internal/service"
)

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "not found maps to 404",
			err:        service.ErrNotFound,
			wantStatus: fiber.StatusNotFound,
		},
		{
			name:       "not owner maps to 403",
			err:        service.ErrNotOwner,
			wantStatus: fiber.StatusForbidden,
		},
		{
			name:       "store unavailable maps to 503",
			err:        errors.Join(service.ErrStoreUnavailable, errors.New("connection refused")),
			wantStatus: fiber.StatusServiceUnavailable,
		},
		{
			name:       "validation maps to 400",
			err:        &service.ValidationError{Field: "name", Message: "Please enter a wishlist name"},
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := serviceError(tt.err)

			var fiberErr *fiber.Error
			if !errors.As(mapped, &fiberErr) {
				t.Fatalf("serviceError() = %v, want *fiber.Error", mapped)
			}
			if fiberErr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", fiberErr.Code, tt.wantStatus)
			}
		})
	}
}

func TestServiceErrorValidationMessagePassesThrough(t *testing.T) {
	mapped := serviceError(&service.ValidationError{Field: "item_url", Message: "URL must use http:// or https:// scheme"})

	var fiberErr *fiber.Error
	if !errors.As(mapped, &fiberErr) {
		t.Fatalf("serviceError() = %v, want *fiber.Error", mapped)
	}
	if fiberErr.Message != "URL must use http:// or https:// scheme" {
		t.Errorf("message = %q, want the validation message", fiberErr.Message)
	}
}

func TestServiceErrorUnknownPassesThrough(t *testing.T) {
	sentinel := errors.New("template missing")
	if got := serviceError(sentinel); got != sentinel {
		t.Errorf("serviceError() = %v, want original error", got)
	}
}
