package analytics

import (
	"math"
	"sort"

	"github.com/tokenbar/tokenbar/internal/core/pricing"
	"github.com/tokenbar/tokenbar/internal/core/session"
)

// ModelUsage is one entry of the per-model breakdown for the active block.
type ModelUsage struct {
	Model               string  `json:"model"`
	RawTokens           int     `json:"rawTokens"`
	WeightedTokens      int     `json:"weightedTokens"`
	CacheCreationTokens int     `json:"cacheCreationTokens"`
	CacheReadTokens     int     `json:"cacheReadTokens"`
	EventCount          int     `json:"eventCount"`
	Weight              float64 `json:"weight"`
}

// Breakdown lists per-model usage for a block, sorted descending by weighted
// contribution. Models outside the tracked families are excluded entirely,
// even though their raw tokens still feed the burn rate upstream.
func Breakdown(block *session.SessionBlock) []ModelUsage {
	if block == nil {
		return nil
	}

	entries := make([]ModelUsage, 0, len(block.Models))
	for name, acc := range block.Models {
		w := pricing.DisplayWeight(name)
		if w <= 0 {
			continue
		}
		raw := acc.InputTokens + acc.OutputTokens
		entries = append(entries, ModelUsage{
			Model:               name,
			RawTokens:           raw,
			WeightedTokens:      int(math.Round(float64(raw) * w)),
			CacheCreationTokens: acc.CacheCreationTokens,
			CacheReadTokens:     acc.CacheReadTokens,
			EventCount:          acc.EventCount,
			Weight:              w,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].WeightedTokens != entries[j].WeightedTokens {
			return entries[i].WeightedTokens > entries[j].WeightedTokens
		}
		return entries[i].Model < entries[j].Model
	})

	return entries
}
