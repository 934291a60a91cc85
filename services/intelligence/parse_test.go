package intelligence

import (
	"errors"
	"testing"

	"medibook/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAnalysisJSON = `{
	"symptoms": ["chest pain", "palpitations"],
	"recommended_specialist": "cardiologist",
	"specialist_description": "Heart and cardiovascular system specialist",
	"confidence": 0.9,
	"reasoning": "Chest pain with palpitations points to a cardiac cause."
}`

func TestParseAnalysisPlainJSON(t *testing.T) {
	analysis, err := ParseAnalysis(sampleAnalysisJSON)
	require.NoError(t, err)
	assert.Equal(t, "cardiologist", analysis.RecommendedSpecialist)
	assert.Equal(t, []string{"chest pain", "palpitations"}, analysis.Symptoms)
	assert.InDelta(t, 0.9, analysis.Confidence, 0.0001)
}

func TestParseAnalysisJSONFence(t *testing.T) {
	raw := "Here is my analysis:\n```json\n" + sampleAnalysisJSON + "\n```\nLet me know if you need more."
	analysis, err := ParseAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, "cardiologist", analysis.RecommendedSpecialist)
}

func TestParseAnalysisBareFence(t *testing.T) {
	raw := "```\n" + sampleAnalysisJSON + "\n```"
	analysis, err := ParseAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, "cardiologist", analysis.RecommendedSpecialist)
}

func TestParseAnalysisGarbage(t *testing.T) {
	_, err := ParseAnalysis("I am sorry, I cannot help with that.")
	assert.Error(t, err)
}

func TestParseAnalysisMissingSpecialist(t *testing.T) {
	_, err := ParseAnalysis(`{"symptoms": ["fever"], "confidence": 0.4}`)
	assert.Error(t, err)
}

func TestFallbackAnalysis(t *testing.T) {
	analysis := FallbackAnalysis("weird tingling everywhere", errors.New("decode failed"))

	assert.Equal(t, catalog.DefaultSpecialist, analysis.RecommendedSpecialist)
	assert.InDelta(t, 0.5, analysis.Confidence, 0.0001)
	assert.Equal(t, []string{"weird tingling everywhere"}, analysis.Symptoms)
	assert.Contains(t, analysis.Reasoning, "decode failed")
}
