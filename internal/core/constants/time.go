package constants

import "time"

const (
	// Session window duration. Gap detection uses the same threshold: an idle
	// period of at least one window length separates two sessions.
	SessionDuration        = 5 * time.Hour
	SessionDurationSeconds = int64(5 * 3600)

	// Only files modified within this window are re-scanned each cycle.
	RecentFileWindow = 24 * time.Hour

	// Burn rate is derived from the trailing hour of usage.
	BurnRateWindow = time.Hour

	// Predictions beyond the window length itself are reported as "5h+".
	MaxPredictionMinutes = 300
)
