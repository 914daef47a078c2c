// AngelaMos | 2026
// identity_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIDIsCanonical(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := NewID()
		require.True(t, IsValidID(id), "generated id %q must be canonical", id)

		_, dup := seen[id]
		require.False(t, dup, "generated id %q repeated", id)
		seen[id] = struct{}{}
	}
}

func TestIsValidID(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{"canonical", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"uppercase hex", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", true},
		{"empty", "", false},
		{"not an id", "buy-milk", false},
		{"too short", "6ba7b810-9dad-11d1-80b4", false},
		{"missing hyphens", "6ba7b8109dad11d180b400c04fd430c8", false},
		{"braced form", "{6ba7b810-9dad-11d1-80b4-00c04fd430c}", false},
		{"hyphens misplaced", "6ba7b81-09dad-11d1-80b4-00c04fd430c88", false},
		{"non-hex rune", "6ba7b810-9dad-11d1-80b4-00c04fd430zz", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.valid, IsValidID(tc.input))
		})
	}
}
