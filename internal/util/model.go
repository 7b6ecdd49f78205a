package util

import (
	"regexp"
	"strings"
)

// SimplifyModelName transforms model names for display.
// Pattern: claude-{model-name}-{date} -> {Model-name} (first letter capitalized)
func SimplifyModelName(modelName string) string {
	re := regexp.MustCompile(`^claude-(.+)-(\d{8})$`)
	matches := re.FindStringSubmatch(modelName)

	if len(matches) == 3 {
		modelPart := matches[1]
		if len(modelPart) > 0 {
			return strings.ToUpper(string(modelPart[0])) + modelPart[1:]
		}
		return modelPart
	}

	return modelName
}

// IsOpusModel reports whether the model name belongs to the Opus family.
func IsOpusModel(modelName string) bool {
	return strings.Contains(strings.ToLower(modelName), "opus")
}

// IsSonnetModel reports whether the model name belongs to the Sonnet family.
func IsSonnetModel(modelName string) bool {
	return strings.Contains(strings.ToLower(modelName), "sonnet")
}
