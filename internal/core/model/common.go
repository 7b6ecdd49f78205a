package model

// Model family markers, matched as substrings of the full model name
const (
	FamilyOpus   = "opus"
	FamilySonnet = "sonnet"

	// Log lines written by the CLI itself rather than the API carry this
	// sentinel model name and are never billable.
	ModelSynthetic = "<synthetic>"
)

// Plan identifiers
const (
	PlanPro    = "pro"
	PlanMax5   = "max5"
	PlanMax20  = "max20"
	PlanCustom = "custom"
)
