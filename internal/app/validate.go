package app

import (
	"math"
	"regexp"

	"verniti/internal/domain"
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{6,15}$`)
)

func validateEmail(field string, v any) error {
	s, ok := v.(string)
	if !ok || !emailRe.MatchString(s) {
		return &domain.InvalidFieldError{Field: field, Reason: "must be a valid email address"}
	}
	return nil
}

func validatePhone(field string, v any) error {
	s, ok := v.(string)
	if !ok || !phoneRe.MatchString(s) {
		return &domain.InvalidFieldError{Field: field, Reason: "must be 6 to 15 digits with an optional leading +"}
	}
	return nil
}

// validateRating accepts any whole number between 1 and 5. JSON decoding
// hands us float64, BSON round-trips may hand back int32/int64.
func validateRating(field string, v any) error {
	n, ok := asNumber(v)
	if !ok || n != math.Trunc(n) || n < 1 || n > 5 {
		return &domain.InvalidFieldError{Field: field, Reason: "must be an integer between 1 and 5"}
	}
	return nil
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// present treats nil and empty-string values the same as an absent key.
func present(doc domain.Document, field string) bool {
	v, ok := doc[field]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}
