package analytics

import (
	"time"

	"github.com/tokenbar/tokenbar/internal/core/pricing"
	"github.com/tokenbar/tokenbar/internal/core/session"
	"github.com/tokenbar/tokenbar/internal/util"
)

// UsageSnapshot is the engine's sole output: everything the presentation
// layer renders for one polling cycle. Immutable once assembled.
type UsageSnapshot struct {
	Active        bool                  `json:"active"`
	Tokens        int                   `json:"tokens"`
	TokenLimit    int                   `json:"tokenLimit"`
	Plan          pricing.Plan          `json:"plan"`
	SessionStart  time.Time             `json:"sessionStart"`
	SessionEnd    time.Time             `json:"sessionEnd"`
	BurnRate      float64               `json:"burnRate"`
	TimeRemaining string                `json:"timeRemaining"`
	ResetAt       string                `json:"resetAt"`
	Models        []ModelUsage          `json:"models,omitempty"`
	ActiveBlock   *session.SessionBlock `json:"-"`
}

// PeakDisplayTokens scans all non-gap blocks for the largest weighted token
// count ever observed in a single window. Plan detection keys off this peak.
func PeakDisplayTokens(blocks []*session.SessionBlock) int {
	peak := 0
	for _, b := range blocks {
		if b.IsGap {
			continue
		}
		if t := b.DisplayTokens(); t > peak {
			peak = t
		}
	}
	return peak
}

// activeBlock returns the non-gap block covering now, if any. The segmenter
// guarantees blocks never overlap, so at most one can match.
func activeBlock(blocks []*session.SessionBlock, now time.Time) *session.SessionBlock {
	for _, b := range blocks {
		if b.IsActive(now) {
			return b
		}
	}
	return nil
}

// Assemble combines the segmented blocks into one snapshot. planOverride, if
// it names a known tier, pins the plan instead of detecting it from peak
// usage; detection still runs for everything else.
func Assemble(blocks []*session.SessionBlock, planOverride string, now time.Time) UsageSnapshot {
	plan, ok := pricing.GetPlan(planOverride)
	if !ok {
		plan = pricing.DetectPlan(PeakDisplayTokens(blocks))
	}

	active := activeBlock(blocks, now)
	if active == nil {
		return UsageSnapshot{
			Plan:          plan,
			TokenLimit:    plan.TokenLimit,
			BurnRate:      BurnRate(blocks, now),
			TimeRemaining: RemainingNoEstimate,
		}
	}

	tokens := active.DisplayTokens()
	rate := BurnRate(blocks, now)

	return UsageSnapshot{
		Active:        true,
		Tokens:        tokens,
		TokenLimit:    plan.TokenLimit,
		Plan:          plan,
		SessionStart:  active.StartTime,
		SessionEnd:    active.EndTime,
		BurnRate:      rate,
		TimeRemaining: TimeRemaining(tokens, plan.TokenLimit, rate, active.EndTime, now),
		ResetAt:       util.GetTimeProvider().Format(active.EndTime, "15:04"),
		Models:        Breakdown(active),
		ActiveBlock:   active,
	}
}
