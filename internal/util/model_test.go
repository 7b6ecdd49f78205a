package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyModelName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet-4-20250514", "Sonnet-4"},
		{"claude-opus-4-20250514", "Opus-4"},
		{"claude-3-5-haiku-20241022", "3-5-haiku"},
		{"gpt-4", "gpt-4"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SimplifyModelName(tt.input))
	}
}

func TestModelFamilies(t *testing.T) {
	assert.True(t, IsOpusModel("claude-opus-4-20250514"))
	assert.True(t, IsOpusModel("claude-OPUS-4-5"))
	assert.False(t, IsOpusModel("claude-sonnet-4-20250514"))

	assert.True(t, IsSonnetModel("claude-sonnet-4-20250514"))
	assert.False(t, IsSonnetModel("claude-3-5-haiku-20241022"))
}
