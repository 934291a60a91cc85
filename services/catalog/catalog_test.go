package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		matched bool
	}{
		{name: "spaced id", input: "i'd rather see an ent specialist", want: "ent_specialist", matched: true},
		{name: "raw id", input: "give me a dermatologist instead", want: "dermatologist", matched: true},
		{name: "case insensitive", input: "A Cardiologist would be better", want: "cardiologist", matched: true},
		{name: "embedded in sentence", input: "no, I want to see a neurologist please", want: "neurologist", matched: true},
		{name: "no match", input: "someone else entirely", matched: false},
		{name: "empty", input: "", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchText(tt.input)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMatchTextDeclarationOrderWins(t *testing.T) {
	// Both names appear; the one declared earlier in the catalog is returned.
	got, ok := MatchText("cardiologist or maybe a psychiatrist")
	require.True(t, ok)
	assert.Equal(t, "cardiologist", got)
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("pulmonologist")
	require.True(t, ok)
	assert.Equal(t, "Lung and respiratory specialist", s.Description)
	assert.Contains(t, s.Keywords, "asthma")

	_, ok = Lookup("astrologer")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "General Physician", DisplayName("general_physician"))
	assert.Equal(t, "Ent Specialist", DisplayName("ent_specialist"))
	assert.Equal(t, "Cardiologist", DisplayName("cardiologist"))
}

func TestPromptContext(t *testing.T) {
	ctx := PromptContext()

	lines := strings.Split(ctx, "\n")
	assert.Len(t, lines, len(Specialists()))
	assert.Contains(t, ctx, "- cardiologist: Heart and cardiovascular system specialist (keywords: chest pain,")
	assert.Contains(t, ctx, "- general_physician:")
}

func TestDefaultSpecialistInCatalog(t *testing.T) {
	_, ok := Lookup(DefaultSpecialist)
	assert.True(t, ok)
}
