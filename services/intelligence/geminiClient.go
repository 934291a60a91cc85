// File: services/intelligence/geminiClient.go
package intelligence

import (
	"context"
	"fmt"
	"strings"

	"medibook/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const triagePromptTemplate = `You are a medical triage assistant. Analyze the patient's symptoms and recommend the most appropriate specialist.

Available specialists and their areas:
%s

Respond in JSON format with these fields:
- symptoms: list of identified symptoms
- recommended_specialist: one of the specialist types listed above (use exact key name like "cardiologist", "general_physician")
- specialist_description: brief description of why this specialist
- confidence: float between 0 and 1
- reasoning: brief explanation of your recommendation

Be conservative - if symptoms are vague or could be multiple things, recommend general_physician first.

Patient's symptoms: %s`

// GeminiClassifier implements SymptomClassifier on top of the Gemini API.
type GeminiClassifier struct {
	model *genai.GenerativeModel
}

func NewGeminiClassifier(apiKey, modelName string) (*GeminiClassifier, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.3)
	return &GeminiClassifier{model: model}, nil
}

// Classify sends the symptoms and catalog context to Gemini and decodes the
// structured recommendation. The model is called exactly once; any transport
// or decode failure is returned to the caller for fallback handling.
func (g *GeminiClassifier) Classify(ctx context.Context, symptomsText string, catalogContext string) (models.SymptomAnalysis, error) {
	prompt := fmt.Sprintf(triagePromptTemplate, catalogContext, symptomsText)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.SymptomAnalysis{}, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return models.SymptomAnalysis{}, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	return ParseAnalysis(sb.String())
}
