package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{45200, "45.2K"},
		{999999, "1000.0K"},
		{1000000, "1.0M"},
		{2500000, "2.5M"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.input))
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "45m", FormatDuration(45*time.Minute))
	assert.Equal(t, "1h 0m", FormatDuration(time.Hour))
	assert.Equal(t, "2h 13m", FormatDuration(2*time.Hour+13*time.Minute))
}

func TestFormatBurnRate(t *testing.T) {
	assert.Equal(t, "85.2 tokens/min", FormatBurnRate(85.2))
	assert.Equal(t, "1.5K tokens/min", FormatBurnRate(1500))
	assert.Equal(t, "2.0M tokens/min", FormatBurnRate(2000000))
}
