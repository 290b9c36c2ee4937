package http

import (
	"net/http/httptest"
	"testing"
)

func TestExtractPage(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{"defaults", "/bookings", 1, DefaultPageLimit, false},
		{"explicit values", "/bookings?page=3&limit=25", 3, 25, false},
		{"limit clamped to max", "/bookings?limit=5000", 1, MaxPageLimit, false},
		{"zero page rejected", "/bookings?page=0", 0, 0, true},
		{"negative limit rejected", "/bookings?limit=-5", 0, 0, true},
		{"non-numeric page rejected", "/bookings?page=abc", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			page, limit, err := ExtractPage(r)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got page=%d limit=%d", page, limit)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d", page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int64
		wantTotalPages int64
	}{
		{"exact division", 1, 10, 100, 10},
		{"ceiling division", 1, 10, 101, 11},
		{"single partial page", 1, 10, 3, 1},
		{"empty result", 1, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
		})
	}
}

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name        string
		page, limit int
		want        []int
	}{
		{"first page", 1, 3, []int{1, 2, 3}},
		{"middle page", 2, 3, []int{4, 5, 6}},
		{"trailing partial page", 3, 3, []int{7}},
		{"page past the end is empty", 4, 3, []int{}},
		{"limit larger than slice", 1, 50, []int{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageSlice(items, tt.page, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("index %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}
