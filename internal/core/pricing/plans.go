package pricing

import "github.com/tokenbar/tokenbar/internal/core/model"

// Plan represents a subscription tier with its weighted-token ceiling per
// 5-hour session window.
type Plan struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	TokenLimit int    `json:"token_limit"`
}

// planTiers is the fixed tier table, ascending by limit. Detection picks the
// first tier whose ceiling covers the observed peak.
var planTiers = []Plan{
	{Id: model.PlanPro, Name: "Claude Pro", TokenLimit: 44_000},
	{Id: model.PlanMax5, Name: "Claude Max 5x", TokenLimit: 220_000},
	{Id: model.PlanMax20, Name: "Claude Max 20x", TokenLimit: 880_000},
}

// customTierStep rounds custom ceilings up to the next 10k tokens.
const customTierStep = 10_000

// GetPlan returns the plan for a known tier id.
func GetPlan(id string) (Plan, bool) {
	for _, p := range planTiers {
		if p.Id == id {
			return p, true
		}
	}
	return Plan{}, false
}

// DetectPlan infers the account tier from the highest weighted-token count
// ever observed in a single session window. A peak above the largest fixed
// tier becomes a custom tier rounded up to the next 10k-token increment.
func DetectPlan(peakTokens int) Plan {
	for _, p := range planTiers {
		if peakTokens <= p.TokenLimit {
			return p
		}
	}
	limit := (peakTokens/customTierStep + 1) * customTierStep
	return Plan{Id: model.PlanCustom, Name: "Custom", TokenLimit: limit}
}
