package lib

import (
	"regexp"
	"strings"
)

// emailShape mirrors the permissive platform-style check: a non-empty local
// part and a domain with at least one dot. Deliberately not RFC 5322.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s.]+$`)

// NormalizeEmail trims and lower-cases an address. The normalized form is
// the uniqueness key for subscribers.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateEmail normalizes raw and returns it if it passes the shape check.
func ValidateEmail(raw string) (string, error) {
	email := NormalizeEmail(raw)
	if email == "" || !emailShape.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return email, nil
}
