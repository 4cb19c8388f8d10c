package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampLayouts(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2024-01-15T08:30:45Z", "2024-01-15T08:30:45Z"},
		{"2024-01-15T08:30:45+02:00", "2024-01-15T06:30:45Z"},
		{"2024-01-15T08:30:45", "2024-01-15T08:30:45Z"},
		{"2024-01-15 08:30:45", "2024-01-15T08:30:45Z"},
		{"2024-01-15T08:30", "2024-01-15T08:30:00Z"},
		{"2024-01-15 08:30", "2024-01-15T08:30:00Z"},
		{"2024-01-15", "2024-01-15T00:00:00Z"},
		{"  2024-01-15  ", "2024-01-15T00:00:00Z"}, // surrounding whitespace
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			parsed, err := ParseTimestamp(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed.UTC().Format(time.RFC3339))
		})
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "yesterday", "15/01/2024", "1705305600"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseTimestamp(raw)
			assert.Error(t, err)
		})
	}
}
