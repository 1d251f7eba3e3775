package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClassifier() *Classifier {
	return NewClassifier(NewDefaultCatalog(nil))
}

func TestMatchEmergencyShortCircuit(t *testing.T) {
	c := newTestClassifier()

	// Emergency wins even when other rules would also score.
	inputs := []string{
		"I have chest pain",
		"fever, cough and shortness of breath",
		"my father is unconscious and has a rash",
	}
	for _, in := range inputs {
		assert.Equal(t, EmergencyResponse, c.Match(in), "input: %s", in)
	}
}

func TestMatchScoringPrefersHigherScore(t *testing.T) {
	c := newTestClassifier()

	got := c.Match("I have a fever and cough")
	entries := NewDefaultCatalog(nil).Entries()
	assert.Equal(t, entries[0].Response, got, "FLU / COLD should win with score 2")
}

func TestMatchTieKeepsEarlierEntry(t *testing.T) {
	c := newTestClassifier()

	// "vomiting" scores GASTROENTERITIS, "itching" scores SKIN RASH,
	// one point each; catalog order decides.
	got := c.Match("vomiting and itching")

	var gastro string
	for _, e := range NewDefaultCatalog(nil).Entries() {
		if e.Name == "GASTROENTERITIS" {
			gastro = e.Response
		}
	}
	assert.Equal(t, gastro, got)
}

func TestMatchFAQFallbacks(t *testing.T) {
	c := newTestClassifier()

	assert.Equal(t,
		"Maintain a balanced diet with fruits, vegetables, proteins, and adequate hydration.",
		c.Match("tell me about diet"))
	assert.Equal(t,
		"Aim for at least 150 minutes of moderate exercise per week. Start slowly.",
		c.Match("how much should I exercise"))
	assert.Equal(t,
		"If you have COVID-like symptoms, isolate yourself and seek medical advice if breathing issues occur.",
		c.Match("I think I caught covid"))
}

func TestMatchGenericDefault(t *testing.T) {
	c := newTestClassifier()

	assert.Equal(t, GenericResponse, c.Match("hello"))
	assert.Equal(t, GenericResponse, c.Match(""))
}

func TestMatchIsDeterministic(t *testing.T) {
	c := newTestClassifier()

	first := c.Match("headache and nausea")
	second := c.Match("headache and nausea")
	assert.Equal(t, first, second)
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	c := newTestClassifier()

	assert.Equal(t, EmergencyResponse, c.Match("CHEST PAIN"))
}

func TestCustomEmergencyKeywords(t *testing.T) {
	c := NewClassifier(NewDefaultCatalog([]string{"code blue"}))

	assert.Equal(t, EmergencyResponse, c.Match("code blue in ward 3"))
	// The default emergency keywords no longer short-circuit, but
	// "chest pain" alone matches nothing else either.
	assert.Equal(t, GenericResponse, c.Match("chest pain"))
}
