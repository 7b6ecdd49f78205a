package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenbar/tokenbar/internal/core/analytics"
	"github.com/tokenbar/tokenbar/internal/core/model"
)

func writeUsageLog(t *testing.T, dir string, ts time.Time, tokens int) {
	t.Helper()
	line := fmt.Sprintf(`{"timestamp":"%s","model":"claude-sonnet-4-20250514","usage":{"input_tokens":%d},"message_id":"msg_%d","request_id":"req_%d"}`,
		ts.UTC().Format("2006-01-02T15:04:05Z"), tokens, tokens, tokens) + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.jsonl"), []byte(line), 0644))
}

func TestRefreshPublishesSnapshot(t *testing.T) {
	dir := t.TempDir()
	now := time.Now().UTC().Truncate(time.Second)
	writeUsageLog(t, dir, now.Add(-10*time.Minute), 500)

	m := NewMonitor(Config{DirOverride: dir, Concurrency: 2})

	var fromCallback analytics.UsageSnapshot
	m.OnUpdate(func(s analytics.UsageSnapshot) { fromCallback = s })

	snap := m.Refresh(now)

	assert.True(t, snap.Active)
	assert.Equal(t, 500, snap.Tokens)
	assert.Equal(t, snap.Tokens, fromCallback.Tokens)
	assert.Equal(t, snap.Tokens, m.Latest().Tokens)
}

func TestRefreshWithNoLogs(t *testing.T) {
	m := NewMonitor(Config{DirOverride: t.TempDir()})

	snap := m.Refresh(time.Now())

	assert.False(t, snap.Active)
	assert.Equal(t, model.PlanPro, snap.Plan.Id)
	assert.Equal(t, analytics.RemainingNoEstimate, snap.TimeRemaining)
}

func TestRefreshPlanOverride(t *testing.T) {
	dir := t.TempDir()
	now := time.Now().UTC().Truncate(time.Second)
	writeUsageLog(t, dir, now.Add(-time.Minute), 100)

	m := NewMonitor(Config{DirOverride: dir, PlanOverride: model.PlanMax5})

	snap := m.Refresh(now)
	assert.Equal(t, model.PlanMax5, snap.Plan.Id)
	assert.Equal(t, 220_000, snap.TokenLimit)
}

func TestNewMonitorDefaultsInterval(t *testing.T) {
	m := NewMonitor(Config{})
	assert.Equal(t, 3*time.Second, m.config.Interval)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	m := NewMonitor(Config{DirOverride: t.TempDir(), Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestRunPicksUpNewLogs(t *testing.T) {
	dir := t.TempDir()
	m := NewMonitor(Config{DirOverride: dir, Interval: 10 * time.Millisecond})

	updates := make(chan analytics.UsageSnapshot, 64)
	m.OnUpdate(func(s analytics.UsageSnapshot) {
		select {
		case updates <- s:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	// First cycles see an empty directory.
	select {
	case s := <-updates:
		assert.False(t, s.Active)
	case <-time.After(2 * time.Second):
		t.Fatal("no initial snapshot published")
	}

	writeUsageLog(t, dir, time.Now().UTC(), 250)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-updates:
			if s.Active {
				assert.Equal(t, 250, s.Tokens)
				return
			}
		case <-deadline:
			t.Fatal("new log file never reflected in a snapshot")
		}
	}
}
