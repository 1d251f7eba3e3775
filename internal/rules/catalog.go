package rules

// Entry is one condition in the symptom rule table. Keywords match as
// lower-case substrings of the normalized message.
type Entry struct {
	Name      string
	Keywords  []string
	Response  string
	Emergency bool
}

// FAQ is a single-keyword fallback consulted only when no rule scores.
type FAQ struct {
	Keywords []string
	Response string
}

// Catalog is the ordered rule table. It is built once at startup and
// never mutated; entry order is the tie-break order for the classifier.
type Catalog struct {
	emergency Entry
	scored    []Entry
	faqs      []FAQ
	generic   string
}

const EmergencyResponse = "⚠️ This may be an emergency. Please call your local emergency number immediately or go to the nearest hospital."

const GenericResponse = "I’m a healthcare assistant, not a doctor. Please describe your symptoms clearly for better guidance."

func defaultEntries() []Entry {
	return []Entry{
		{
			Name:      "EMERGENCY",
			Keywords:  []string{"chest pain", "severe bleeding", "unconscious", "stroke", "shortness of breath"},
			Response:  EmergencyResponse,
			Emergency: true,
		},
		{
			Name:     "FLU / COLD",
			Keywords: []string{"fever", "cough", "sore throat", "runny nose", "body ache"},
			Response: "This sounds like a viral flu or cold. Are you experiencing fever, chest pain, or breathlessness? If not, rest well, stay hydrated, and monitor symptoms for 2–3 days.",
		},
		{
			Name:     "MIGRAINE",
			Keywords: []string{"headache", "nausea", "sensitivity to light", "throbbing"},
			Response: "Symptoms suggest migraine. Rest in a dark, quiet room and stay hydrated. Seek medical advice if frequent or severe.",
		},
		{
			Name:     "GASTROENTERITIS",
			Keywords: []string{"vomiting", "diarrhea", "stomach pain", "nausea"},
			Response: "Possible gastroenteritis. Drink ORS, avoid oily foods, and eat light meals. Visit a doctor if symptoms worsen.",
		},
		{
			Name:     "SKIN RASH",
			Keywords: []string{"rash", "itching", "red patches"},
			Response: "For mild rashes, keep the area clean and dry. Avoid scratching. If spreading or painful, consult a dermatologist.",
		},
		{
			Name:     "DIABETES RISK",
			Keywords: []string{"frequent urination", "excessive thirst", "unexplained weight loss", "fatigue"},
			Response: "These may indicate high blood sugar levels. Consider a blood test and consult a healthcare professional.",
		},
	}
}

func defaultFAQs() []FAQ {
	return []FAQ{
		{
			Keywords: []string{"diet", "nutrition"},
			Response: "Maintain a balanced diet with fruits, vegetables, proteins, and adequate hydration.",
		},
		{
			Keywords: []string{"exercise"},
			Response: "Aim for at least 150 minutes of moderate exercise per week. Start slowly.",
		},
		{
			Keywords: []string{"covid"},
			Response: "If you have COVID-like symptoms, isolate yourself and seek medical advice if breathing issues occur.",
		},
	}
}

// NewDefaultCatalog builds the canonical rule table. Passing a non-empty
// emergencyKeywords replaces the emergency entry's keyword set.
func NewDefaultCatalog(emergencyKeywords []string) *Catalog {
	entries := defaultEntries()
	if len(emergencyKeywords) > 0 {
		entries[0].Keywords = emergencyKeywords
	}
	return NewCatalog(entries, defaultFAQs(), GenericResponse)
}

// NewCatalog builds a catalog from an explicit rule table. Exactly one
// entry must be marked Emergency; it is checked before any scoring.
func NewCatalog(entries []Entry, faqs []FAQ, generic string) *Catalog {
	c := &Catalog{faqs: faqs, generic: generic}
	for _, e := range entries {
		if e.Emergency {
			c.emergency = e
			continue
		}
		c.scored = append(c.scored, e)
	}
	return c
}

// Entries returns the scored (non-emergency) entries in declaration order.
func (c *Catalog) Entries() []Entry { return c.scored }

// Emergency returns the entry checked unconditionally before scoring.
func (c *Catalog) Emergency() Entry { return c.emergency }
