package rules

import "strings"

// Classifier maps free-text symptom descriptions to a catalog response.
// It is pure and total: any input, including empty, yields a response.
type Classifier struct {
	catalog *Catalog
}

func NewClassifier(catalog *Catalog) *Classifier {
	return &Classifier{catalog: catalog}
}

// Match resolves a reply for the given raw message.
//
// The emergency entry short-circuits on any keyword hit. Remaining
// entries are scored by keyword containment count; a later entry only
// wins with a strictly greater score, so the earliest entry keeps ties.
// FAQs are consulted only when nothing scores, in fixed order.
func (c *Classifier) Match(text string) string {
	t := strings.ToLower(text)

	for _, kw := range c.catalog.Emergency().Keywords {
		if strings.Contains(t, kw) {
			return c.catalog.Emergency().Response
		}
	}

	bestScore := 0
	bestResponse := ""
	for _, entry := range c.catalog.Entries() {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(t, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestResponse = entry.Response
		}
	}
	if bestScore > 0 {
		return bestResponse
	}

	for _, faq := range c.catalog.faqs {
		for _, kw := range faq.Keywords {
			if strings.Contains(t, kw) {
				return faq.Response
			}
		}
	}

	return c.catalog.generic
}
