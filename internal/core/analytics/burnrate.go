package analytics

import (
	"time"

	"github.com/tokenbar/tokenbar/internal/core/constants"
	"github.com/tokenbar/tokenbar/internal/core/session"
)

// BurnRate estimates tokens consumed per minute over the trailing hour.
//
// Rather than counting only events literally timestamped in the last hour,
// each non-gap block's raw tokens are allocated proportionally by how much of
// the block's active span overlaps the trailing-hour window. This smooths
// bursty usage and attributes a fair share of a long-running block to the
// window. Raw tokens are used here because unrecognized models still burn
// real capacity even though they never count against the published limit.
func BurnRate(blocks []*session.SessionBlock, now time.Time) float64 {
	windowStart := now.Add(-constants.BurnRateWindow)

	total := 0.0
	for _, b := range blocks {
		if b.IsGap {
			continue
		}

		actualEnd := b.ActualEnd(now)
		blockDuration := actualEnd.Sub(b.StartTime)
		if blockDuration <= 0 {
			continue
		}

		overlapStart := b.StartTime
		if windowStart.After(overlapStart) {
			overlapStart = windowStart
		}
		overlapEnd := actualEnd
		if now.Before(overlapEnd) {
			overlapEnd = now
		}
		if !overlapEnd.After(overlapStart) {
			continue
		}

		fraction := overlapEnd.Sub(overlapStart).Seconds() / blockDuration.Seconds()
		total += float64(b.RawTokens()) * fraction
	}

	return total / constants.BurnRateWindow.Minutes()
}
