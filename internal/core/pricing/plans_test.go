package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenbar/tokenbar/internal/core/model"
)

func TestGetPlan(t *testing.T) {
	plan, ok := GetPlan(model.PlanMax5)
	require.True(t, ok)
	assert.Equal(t, "Claude Max 5x", plan.Name)
	assert.Equal(t, 220_000, plan.TokenLimit)

	_, ok = GetPlan("")
	assert.False(t, ok)
	_, ok = GetPlan("enterprise")
	assert.False(t, ok)
}

func TestDetectPlanFixedTiers(t *testing.T) {
	tests := []struct {
		name     string
		peak     int
		expected string
		limit    int
	}{
		{"zero usage defaults to lowest tier", 0, model.PlanPro, 44_000},
		{"within pro", 30_000, model.PlanPro, 44_000},
		{"pro boundary inclusive", 44_000, model.PlanPro, 44_000},
		{"within max5", 100_000, model.PlanMax5, 220_000},
		{"covered by max20", 300_000, model.PlanMax20, 880_000},
		{"max20 boundary inclusive", 880_000, model.PlanMax20, 880_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := DetectPlan(tt.peak)
			assert.Equal(t, tt.expected, plan.Id)
			assert.Equal(t, tt.limit, plan.TokenLimit)
		})
	}
}

func TestDetectPlanCustomTier(t *testing.T) {
	plan := DetectPlan(880_001)
	assert.Equal(t, model.PlanCustom, plan.Id)
	assert.Equal(t, 890_000, plan.TokenLimit)

	// A peak exactly on a 10k boundary still rounds up to the next increment
	plan = DetectPlan(900_000)
	assert.Equal(t, 910_000, plan.TokenLimit)
}

func TestDisplayWeight(t *testing.T) {
	assert.Equal(t, 1.0, DisplayWeight("claude-sonnet-4-20250514"))
	assert.Equal(t, 5.0, DisplayWeight("claude-opus-4-20250514"))
	assert.Equal(t, 5.0, DisplayWeight("claude-opus-4-1-20250805"))
	assert.InDelta(t, 5.0/3.0, DisplayWeight("claude-opus-4-5-20251101"), 1e-9)
	assert.Equal(t, 0.0, DisplayWeight("claude-3-5-haiku-20241022"))
	assert.Equal(t, 0.0, DisplayWeight("gpt-4"))
	assert.Equal(t, 0.0, DisplayWeight(""))
}

func TestIsTracked(t *testing.T) {
	assert.True(t, IsTracked("claude-sonnet-4-20250514"))
	assert.True(t, IsTracked("claude-opus-4-5-20251101"))
	assert.False(t, IsTracked("claude-3-5-haiku-20241022"))
}
