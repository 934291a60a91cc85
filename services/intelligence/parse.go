package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"

	"medibook/models"
)

// ParseAnalysis decodes a model response into a SymptomAnalysis. Responses
// are often wrapped in markdown code fences; those are stripped first.
func ParseAnalysis(raw string) (models.SymptomAnalysis, error) {
	content := raw
	if strings.Contains(content, "```json") {
		content = strings.SplitN(content, "```json", 2)[1]
		content = strings.SplitN(content, "```", 2)[0]
	} else if strings.Contains(content, "```") {
		parts := strings.Split(content, "```")
		if len(parts) >= 2 {
			content = parts[1]
		}
	}

	var analysis models.SymptomAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &analysis); err != nil {
		return models.SymptomAnalysis{}, fmt.Errorf("failed to decode analysis: %w", err)
	}
	if analysis.RecommendedSpecialist == "" {
		return models.SymptomAnalysis{}, fmt.Errorf("analysis missing recommended_specialist")
	}
	return analysis, nil
}
