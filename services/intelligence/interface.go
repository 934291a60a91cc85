package intelligence

import (
	"context"
	"fmt"

	"medibook/models"
	"medibook/services/catalog"
)

// SymptomClassifier maps free-text symptoms to a specialist recommendation.
// Implementations must treat catalogContext as the authoritative list of
// specialist ids they may recommend.
type SymptomClassifier interface {
	Classify(ctx context.Context, symptomsText string, catalogContext string) (models.SymptomAnalysis, error)
}

// FallbackAnalysis is the fixed recommendation used when classification fails
// for any reason. Callers must substitute it instead of surfacing the error.
func FallbackAnalysis(symptomsText string, cause error) models.SymptomAnalysis {
	return models.SymptomAnalysis{
		Symptoms:              []string{symptomsText},
		RecommendedSpecialist: catalog.DefaultSpecialist,
		SpecialistDescription: "General health consultation recommended",
		Confidence:            0.5,
		Reasoning:             fmt.Sprintf("Unable to parse specific symptoms, recommending general consultation. Error: %v", cause),
	}
}
