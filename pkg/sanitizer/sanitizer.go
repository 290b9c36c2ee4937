package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var reValidPhone = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// TrimAndNormalize trims the string and collapses internal whitespace runs
// into single spaces.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}
	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeEmail lower-cases and trims so the unique index treats
// User@Example.com and user@example.com as the same address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeCity(city string) string {
	return TrimAndNormalize(city)
}

// NormalizeQueryTerm prepares a search criterion for case-insensitive
// substring matching.
func NormalizeQueryTerm(term string) string {
	return strings.ToLower(TrimAndNormalize(term))
}

// NormalizePhone strips spaces, dashes and parentheses and returns the
// number when it matches E.164, or empty when it does not.
func NormalizePhone(phone string) string {
	p := Pipeline{
		strings.TrimSpace,
		func(s string) string {
			return strings.Map(func(r rune) rune {
				switch r {
				case ' ', '-', '(', ')', '.':
					return -1
				}
				return r
			}, s)
		},
	}
	cleaned := p.Apply(phone)
	if cleaned == "" {
		return ""
	}
	if !reValidPhone.MatchString(cleaned) {
		return ""
	}
	return cleaned
}

// NormalizePassportNumber upper-cases and strips whitespace.
func NormalizePassportNumber(number string) string {
	return strings.ToUpper(strings.ReplaceAll(TrimAndNormalize(number), " ", ""))
}
