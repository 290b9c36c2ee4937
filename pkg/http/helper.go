package http

import (
	"net/http"
	"strconv"

	apperrors "tripwise/pkg/errors"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ExtractPage reads the 1-indexed page and bounded limit query parameters.
// Absent parameters fall back to page 1 and the default limit.
func ExtractPage(r *http.Request) (page, limit int, err error) {
	query := r.URL.Query()

	page = 1
	if s := query.Get("page"); s != "" {
		v, convErr := strconv.Atoi(s)
		if convErr != nil || v < 1 {
			return 0, 0, apperrors.InvalidInput("invalid page parameter: " + s)
		}
		page = v
	}

	limit = DefaultPageLimit
	if s := query.Get("limit"); s != "" {
		v, convErr := strconv.Atoi(s)
		if convErr != nil || v < 1 {
			return 0, 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return page, limit, nil
}

// Offset converts a 1-indexed page into a skip count.
func Offset(page, limit int) int64 {
	return int64(page-1) * int64(limit)
}

// PageSlice returns the requested 1-indexed page of items. A page past the
// end yields an empty slice, not an error.
func PageSlice[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
