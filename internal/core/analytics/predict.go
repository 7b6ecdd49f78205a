package analytics

import (
	"time"

	"github.com/tokenbar/tokenbar/internal/core/constants"
	"github.com/tokenbar/tokenbar/internal/util"
)

// Fixed time-remaining answers for the degenerate states. None of these are
// errors: a zero burn rate or an exhausted limit is a valid thing to report.
const (
	RemainingExceeded   = "Exceeded"
	RemainingNoEstimate = "No estimate"
	RemainingCapped     = "5h+"
)

// TimeRemaining predicts how long the current session can continue before
// the weighted token limit is exhausted or the window resets, whichever
// comes first. A session can never outlast its own window.
func TimeRemaining(tokens, limit int, burnRate float64, sessionEnd, now time.Time) string {
	if tokens >= limit {
		return RemainingExceeded
	}
	if burnRate <= 0 {
		return RemainingNoEstimate
	}

	minutesByBurnRate := float64(limit-tokens) / burnRate
	minutesUntilReset := sessionEnd.Sub(now).Minutes()

	effective := minutesByBurnRate
	if minutesUntilReset < effective {
		effective = minutesUntilReset
	}

	if effective < 0 {
		return RemainingExceeded
	}
	if effective > constants.MaxPredictionMinutes {
		return RemainingCapped
	}
	return util.FormatDuration(time.Duration(effective * float64(time.Minute)))
}
