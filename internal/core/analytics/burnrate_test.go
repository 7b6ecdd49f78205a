package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenbar/tokenbar/internal/core/model"
	"github.com/tokenbar/tokenbar/internal/core/session"
)

const sonnetModel = "claude-sonnet-4-20250514"

func segment(t *testing.T, events []model.UsageEvent) []*session.SessionBlock {
	t.Helper()
	return session.NewSegmenter().Segment(events)
}

func sonnetEvent(ts time.Time, in, out int) model.UsageEvent {
	return model.UsageEvent{Timestamp: ts, InputTokens: in, OutputTokens: out, Model: sonnetModel}
}

func TestBurnRateNoBlocks(t *testing.T) {
	assert.Equal(t, 0.0, BurnRate(nil, time.Now()))
}

func TestBurnRateActiveBlockFullyInsideWindow(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	start := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	// Block opened 30 minutes ago, still active: the whole active span
	// overlaps the trailing hour, so all 600 tokens land in the window.
	blocks := segment(t, []model.UsageEvent{
		sonnetEvent(start.Add(5*time.Minute), 400, 0),
		sonnetEvent(start.Add(20*time.Minute), 200, 0),
	})
	require.Len(t, blocks, 1)
	require.True(t, blocks[0].IsActive(now))

	rate := BurnRate(blocks, now)
	assert.InDelta(t, 600.0/60.0, rate, 1e-9)
}

func TestBurnRateAllocatesProportionalShare(t *testing.T) {
	now := time.Date(2025, 3, 15, 13, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	// Active block spanning three hours of activity; only the trailing hour
	// overlaps, so a third of the tokens are attributed to the window.
	blocks := segment(t, []model.UsageEvent{
		sonnetEvent(start, 300, 0),
		sonnetEvent(start.Add(2*time.Hour), 300, 0),
	})
	require.Len(t, blocks, 1)
	require.True(t, blocks[0].IsActive(now))

	rate := BurnRate(blocks, now)
	assert.InDelta(t, (600.0/3.0)/60.0, rate, 1e-9)
}

func TestBurnRateIgnoresStaleBlocks(t *testing.T) {
	now := time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

	// Block ended nine hours before now: no overlap with the trailing hour.
	blocks := segment(t, []model.UsageEvent{
		sonnetEvent(now.Add(-10*time.Hour), 500, 0),
		sonnetEvent(now.Add(-9*time.Hour), 500, 0),
	})

	assert.Equal(t, 0.0, BurnRate(blocks, now))
}

func TestBurnRateSkipsGapBlocks(t *testing.T) {
	now := time.Date(2025, 3, 15, 16, 30, 0, 0, time.UTC)
	first := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	blocks := segment(t, []model.UsageEvent{
		sonnetEvent(first, 1000, 0),
		sonnetEvent(now.Add(-time.Minute), 600, 0),
	})
	require.Len(t, blocks, 3)
	require.True(t, blocks[1].IsGap)

	// Only the fresh block contributes; the gap marker and the stale block
	// add nothing.
	rate := BurnRate(blocks, now)
	assert.Greater(t, rate, 0.0)
}

func TestBurnRateUsesRawTokens(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	start := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	// An untracked model burns real capacity even though it never counts
	// against the plan limit.
	blocks := segment(t, []model.UsageEvent{
		{Timestamp: start.Add(5 * time.Minute), InputTokens: 600, Model: "claude-3-5-haiku-20241022"},
	})
	require.Len(t, blocks, 1)
	require.Equal(t, 0, blocks[0].DisplayTokens())

	rate := BurnRate(blocks, now)
	assert.InDelta(t, 600.0/60.0, rate, 1e-9)
}
