package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "small bytes", bytes: 512, expected: "512 B"},
		{name: "just under 1KB", bytes: 1023, expected: "1023 B"},
		{name: "exactly 1KB", bytes: 1024, expected: "1.0 KB"},
		{name: "1.5KB", bytes: 1536, expected: "1.5 KB"},
		{name: "exactly 1MB", bytes: 1024 * 1024, expected: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatBytes(tt.bytes))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	unix := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	formatted := formatTimestamp(unix)

	assert.Len(t, formatted, 19)
	assert.Contains(t, formatted, "202")
}
