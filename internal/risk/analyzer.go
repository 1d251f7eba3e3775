package risk

import "strings"

// Default critical-keyword list. Maintained independently from the rule
// catalog's emergency entry: this list drives outbound alerts, the
// catalog entry drives the conversational redirect.
var defaultKeywords = []string{
	"chest pain",
	"breathless",
	"difficulty breathing",
	"heart pain",
	"heart attack",
	"severe headache",
	"bleeding",
	"unconscious",
	"high fever",
	"stroke",
}

// Analyzer flags messages containing high-risk language.
type Analyzer struct {
	keywords []string
}

// NewAnalyzer builds an analyzer over the given keyword list, falling
// back to the default critical list when none is supplied.
func NewAnalyzer(keywords []string) *Analyzer {
	if len(keywords) == 0 {
		keywords = defaultKeywords
	}
	return &Analyzer{keywords: keywords}
}

// AssessRisk reports whether the message contains any critical keyword.
// Pure substring scan over the lower-cased message.
func (a *Analyzer) AssessRisk(message string) bool {
	t := strings.ToLower(message)
	for _, kw := range a.keywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
