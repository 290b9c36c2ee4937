package service

import (
	"strings"
	"testing"

	"tripwise/pkg/model"
)

func TestGenerateReference_Format(t *testing.T) {
	tests := []struct {
		bookingType string
		wantPrefix  string
	}{
		{model.BookingTypeFlight, "FL-"},
		{model.BookingTypeHotel, "HT-"},
		{model.BookingTypeCar, "CR-"},
		{model.BookingTypeRestaurant, "RS-"},
		{"unknown", "BK-"},
	}

	for _, tt := range tests {
		t.Run(tt.bookingType, func(t *testing.T) {
			ref := GenerateReference(tt.bookingType)
			if !strings.HasPrefix(ref, tt.wantPrefix) {
				t.Errorf("expected prefix %q, got %q", tt.wantPrefix, ref)
			}
			if ref != strings.ToUpper(ref) {
				t.Errorf("expected upper-cased reference, got %q", ref)
			}
			if len(ref) < 6 || len(ref) > 24 {
				t.Errorf("reference length %d outside [6,24]: %q", len(ref), ref)
			}
		})
	}
}

func TestGenerateReference_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		ref := GenerateReference(model.BookingTypeFlight)
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate reference after %d generations: %q", i, ref)
		}
		seen[ref] = struct{}{}
	}
}
