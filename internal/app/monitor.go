package app

import (
	"context"
	"sync"
	"time"

	"github.com/tokenbar/tokenbar/internal/core/analytics"
	"github.com/tokenbar/tokenbar/internal/core/session"
	"github.com/tokenbar/tokenbar/internal/data/ingest"
	"github.com/tokenbar/tokenbar/internal/util"
)

// Config holds the monitor's runtime configuration.
type Config struct {
	DirOverride  string        // single dir or colon-separated list; empty = platform defaults
	PlanOverride string        // known plan id pins the tier instead of detection
	Interval     time.Duration // polling cadence
	Concurrency  int           // per-file decode workers
	Watch        bool          // refresh immediately on log file changes
}

// Monitor drives the engine: every interval it runs one full ingestion pass,
// segments the result and publishes an immutable snapshot. A cycle that
// finds nothing publishes a default snapshot; the next cycle retries the
// full scan unconditionally.
type Monitor struct {
	config    Config
	ingestor  *ingest.Ingestor
	segmenter *session.Segmenter

	mu       sync.RWMutex
	latest   analytics.UsageSnapshot
	onUpdate func(analytics.UsageSnapshot)
}

func NewMonitor(config Config) *Monitor {
	if config.Interval <= 0 {
		config.Interval = 3 * time.Second
	}
	return &Monitor{
		config:    config,
		ingestor:  ingest.NewIngestor(config.DirOverride, config.Concurrency),
		segmenter: session.NewSegmenter(),
	}
}

// OnUpdate registers a callback invoked after each published snapshot.
// Must be set before Run.
func (m *Monitor) OnUpdate(fn func(analytics.UsageSnapshot)) {
	m.onUpdate = fn
}

// Latest returns the most recently published snapshot.
func (m *Monitor) Latest() analytics.UsageSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}

// Refresh runs one complete pass and publishes the result. Publishing is
// last-write-wins: a slow cycle that completes late simply overwrites.
func (m *Monitor) Refresh(now time.Time) analytics.UsageSnapshot {
	events := m.ingestor.Ingest(now)
	blocks := m.segmenter.Segment(events)
	snapshot := analytics.Assemble(blocks, m.config.PlanOverride, now)

	m.mu.Lock()
	m.latest = snapshot
	m.mu.Unlock()

	if m.onUpdate != nil {
		m.onUpdate(snapshot)
	}
	return snapshot
}

// Run polls until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	var watchCh <-chan string
	if m.config.Watch {
		watcher, err := NewFileWatcher(m.ingestor.Roots())
		if err != nil {
			util.LogWarnf("File watching disabled: %v", err)
		} else {
			defer watcher.Close()
			watchCh = watcher.Events()
		}
	}

	m.Refresh(time.Now())

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Refresh(time.Now())
		case <-watchCh:
			m.Refresh(time.Now())
		}
	}
}
