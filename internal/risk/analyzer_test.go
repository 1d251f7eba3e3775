package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessRisk(t *testing.T) {
	a := NewAnalyzer(nil)

	assert.True(t, a.AssessRisk("severe bleeding now"))
	assert.True(t, a.AssessRisk("I think it's a Heart Attack"))
	assert.False(t, a.AssessRisk("mild headache"))
	assert.False(t, a.AssessRisk(""))
}

func TestAssessRiskCustomList(t *testing.T) {
	a := NewAnalyzer([]string{"overdose"})

	assert.True(t, a.AssessRisk("possible overdose"))
	assert.False(t, a.AssessRisk("chest pain"))
}
