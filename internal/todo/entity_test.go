// AngelaMos | 2026
// entity_test.go

package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2026-09-15T18:00:00Z",
			want:  time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			input: "2026-09-15T18:00:00+02:00",
			want: time.Date(
				2026, 9, 15, 18, 0, 0, 0,
				time.FixedZone("", 2*60*60),
			),
		},
		{
			name:  "date only",
			input: "2026-09-15",
			want:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "empty is zero time",
			input: "",
			want:  time.Time{},
		},
		{
			name:  "unparseable is zero time",
			input: "next tuesday",
			want:  time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDeadline(tt.input)
			require.True(
				t,
				tt.want.Equal(got),
				"want %s, got %s", tt.want, got,
			)
		})
	}
}
