package catalog

import (
	"fmt"
	"strings"
)

// DefaultSpecialist is substituted whenever a requested specialist is unknown
// or classification fails.
const DefaultSpecialist = "general_physician"

// Specialist is one entry of the static specialist catalog.
type Specialist struct {
	ID          string
	Keywords    []string
	Description string
}

// specialists is the catalog in declaration order. Order matters: free-text
// matching walks the list front to back and the first hit wins.
var specialists = []Specialist{
	{
		ID:          "cardiologist",
		Keywords:    []string{"chest pain", "heart", "palpitation", "blood pressure", "bp", "cardiac", "heartbeat"},
		Description: "Heart and cardiovascular system specialist",
	},
	{
		ID:          "dermatologist",
		Keywords:    []string{"skin", "rash", "acne", "eczema", "psoriasis", "hair loss", "itching"},
		Description: "Skin, hair, and nail specialist",
	},
	{
		ID:          "orthopedic",
		Keywords:    []string{"bone", "joint", "fracture", "back pain", "spine", "knee", "shoulder", "arthritis"},
		Description: "Bone and joint specialist",
	},
	{
		ID:          "neurologist",
		Keywords:    []string{"headache", "migraine", "seizure", "numbness", "dizziness", "memory", "nerve"},
		Description: "Brain and nervous system specialist",
	},
	{
		ID:          "gastroenterologist",
		Keywords:    []string{"stomach", "digestion", "acidity", "liver", "intestine", "constipation", "diarrhea"},
		Description: "Digestive system specialist",
	},
	{
		ID:          "pulmonologist",
		Keywords:    []string{"breathing", "lungs", "asthma", "cough", "respiratory", "shortness of breath"},
		Description: "Lung and respiratory specialist",
	},
	{
		ID:          "ophthalmologist",
		Keywords:    []string{"eye", "vision", "blurry", "cataract", "glaucoma"},
		Description: "Eye specialist",
	},
	{
		ID:          "ent_specialist",
		Keywords:    []string{"ear", "nose", "throat", "hearing", "sinus", "tonsil"},
		Description: "Ear, Nose, and Throat specialist",
	},
	{
		ID:          "psychiatrist",
		Keywords:    []string{"anxiety", "depression", "stress", "sleep disorder", "mental health", "panic"},
		Description: "Mental health specialist",
	},
	{
		ID:          "general_physician",
		Keywords:    []string{"fever", "cold", "flu", "fatigue", "general", "weakness", "body ache"},
		Description: "General health issues and primary care",
	},
}

// Specialists returns the catalog entries in declaration order.
func Specialists() []Specialist {
	return specialists
}

// Lookup returns the catalog entry for the given specialist id.
func Lookup(id string) (Specialist, bool) {
	for _, s := range specialists {
		if s.ID == id {
			return s, true
		}
	}
	return Specialist{}, false
}

// MatchText scans the catalog for a specialist whose id appears as a
// substring of the lower-cased input, either raw ("ent_specialist") or with
// underscores replaced by spaces ("ent specialist"). The first catalog entry
// that matches wins, so a short id that is a substring of a longer phrase can
// shadow it.
func MatchText(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, s := range specialists {
		spaced := strings.ReplaceAll(s.ID, "_", " ")
		if strings.Contains(lower, spaced) || strings.Contains(lower, s.ID) {
			return s.ID, true
		}
	}
	return "", false
}

// DisplayName renders a specialist id for humans: underscores become spaces
// and every word is capitalized.
func DisplayName(id string) string {
	words := strings.Split(strings.ReplaceAll(id, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// PromptContext renders the catalog as context lines for the classifier
// prompt, one specialist per line.
func PromptContext() string {
	var sb strings.Builder
	for _, s := range specialists {
		fmt.Fprintf(&sb, "- %s: %s (keywords: %s)\n", s.ID, s.Description, strings.Join(s.Keywords, ", "))
	}
	return strings.TrimRight(sb.String(), "\n")
}
