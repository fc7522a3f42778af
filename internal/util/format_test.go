package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(30*time.Second))
	assert.Equal(t, "35m", FormatDuration(35*time.Minute))
	assert.Equal(t, "2h 5m", FormatDuration(2*time.Hour+5*time.Minute))
	assert.Equal(t, "1h 0m", FormatDuration(time.Hour))
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds  int64
		expected string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m 0s"},
		{723, "12m 3s"},
		{3599, "59m 59s"},
		{3600, "1h 0m"},
		{3840, "1h 4m"},
		{7265, "2h 1m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatSeconds(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0%", FormatPercent(0))
	assert.Equal(t, "87%", FormatPercent(87))
	assert.Equal(t, "100%", FormatPercent(100))
}
