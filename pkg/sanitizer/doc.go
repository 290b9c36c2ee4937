// Package sanitizer normalizes user-supplied strings before validation and
// persistence. Sanitization is lossy on purpose: callers should validate
// the sanitized value, not the raw input.
package sanitizer
