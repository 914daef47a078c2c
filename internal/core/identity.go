// AngelaMos | 2026
// identity.go

package core

import (
	"github.com/google/uuid"
)

const canonicalIDLength = 36

// NewID returns a random identifier in canonical hyphenated form.
func NewID() string {
	return uuid.New().String()
}

// IsValidID reports whether s is a canonical 8-4-4-4-12 hyphenated
// identifier. uuid.Parse alone also accepts braced, URN, and compact
// forms, so the shape is checked first.
func IsValidID(s string) bool {
	if len(s) != canonicalIDLength {
		return false
	}

	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}
