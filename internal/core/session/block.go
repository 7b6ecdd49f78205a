package session

import (
	"math"
	"time"

	"github.com/tokenbar/tokenbar/internal/core/model"
	"github.com/tokenbar/tokenbar/internal/core/pricing"
)

// ModelAccumulator holds per-model running totals within one session block.
type ModelAccumulator struct {
	InputTokens         int
	OutputTokens        int
	CacheCreationTokens int
	CacheReadTokens     int
	EventCount          int
}

func (a *ModelAccumulator) add(e model.UsageEvent) {
	a.InputTokens += e.InputTokens
	a.OutputTokens += e.OutputTokens
	a.CacheCreationTokens += e.CacheCreationTokens
	a.CacheReadTokens += e.CacheReadTokens
	a.EventCount++
}

// SessionBlock is one fixed-duration usage window. Real blocks always start
// on an hour boundary (UTC) and span exactly the session duration; gap blocks
// span exactly the idle interval they mark. Blocks are rebuilt from scratch
// every ingestion pass and must not be mutated after the Segmenter returns.
type SessionBlock struct {
	Id         string
	StartTime  time.Time
	EndTime    time.Time
	FirstEvent time.Time
	LastEvent  time.Time
	IsGap      bool
	Models     map[string]*ModelAccumulator
}

// DisplayTokens is the billing-weighted token total across models. Models
// outside the tracked families contribute nothing here.
func (b *SessionBlock) DisplayTokens() int {
	total := 0.0
	for name, acc := range b.Models {
		if w := pricing.DisplayWeight(name); w > 0 {
			total += float64(acc.InputTokens+acc.OutputTokens) * w
		}
	}
	return int(math.Round(total))
}

// RawTokens is the unweighted input+output total across all models,
// including ones that never count against the plan limit.
func (b *SessionBlock) RawTokens() int {
	total := 0
	for _, acc := range b.Models {
		total += acc.InputTokens + acc.OutputTokens
	}
	return total
}

// IsActive reports whether now falls within [start, end) of a non-gap block.
func (b *SessionBlock) IsActive(now time.Time) bool {
	return !b.IsGap && !now.Before(b.StartTime) && now.Before(b.EndTime)
}

// ActualEnd is the effective end of the block's active span: now for a block
// still in progress, otherwise the last event observed in it.
func (b *SessionBlock) ActualEnd(now time.Time) time.Time {
	if b.IsActive(now) {
		return now
	}
	return b.LastEvent
}
