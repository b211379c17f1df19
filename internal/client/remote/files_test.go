package remote

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadName(t *testing.T) {
	now := time.UnixMilli(1717171717171)

	tests := []struct {
		original string
		pattern  string
	}{
		{"Guide.PDF", `^1717171717171-[0-9a-f]{8}\.pdf$`},
		{"/tmp/notes/lbo model.xlsx", `^1717171717171-[0-9a-f]{8}\.xlsx$`},
		{"README", `^1717171717171-[0-9a-f]{8}$`},
	}
	for _, tt := range tests {
		t.Run(tt.original, func(t *testing.T) {
			name, err := UploadName(tt.original, now)
			require.NoError(t, err)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), name)
		})
	}
}

func TestUploadName_NoCollisions(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		name, err := UploadName("a.txt", now)
		require.NoError(t, err)
		require.False(t, seen[name], "duplicate %s", name)
		seen[name] = true
	}
}
