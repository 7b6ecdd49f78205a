package pricing

import "strings"

// Display-token multipliers per model family. Opus usage counts against the
// plan limit at a multiple of its raw tokens; the multiple dropped from 5x
// to 5/3x with the opus-4-5 generation.
const (
	SonnetWeight     = 1.0
	OpusWeight       = 5.0 / 3.0
	OpusLegacyWeight = 5.0
)

// DisplayWeight returns the billing weight for a model name. Models outside
// the Sonnet and Opus families weigh zero: they still burn real capacity
// (raw tokens) but do not count against the published limit.
func DisplayWeight(modelName string) float64 {
	lower := strings.ToLower(modelName)
	switch {
	case strings.Contains(lower, "opus-4-5"):
		return OpusWeight
	case strings.Contains(lower, "opus"):
		return OpusLegacyWeight
	case strings.Contains(lower, "sonnet"):
		return SonnetWeight
	default:
		return 0
	}
}

// IsTracked reports whether a model family counts toward display tokens and
// appears in the per-model breakdown.
func IsTracked(modelName string) bool {
	return DisplayWeight(modelName) > 0
}
