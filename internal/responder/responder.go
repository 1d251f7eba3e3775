package responder

import "context"

// SystemPrompt constrains the generative responder's tone and forbids
// diagnostic or prescriptive content.
const SystemPrompt = "You are a smart healthcare chatbot. Speak politely and naturally like a doctor. " +
	"Ask 1–2 follow-up questions if needed. Give safe, non-diagnostic medical advice. " +
	"Never prescribe medicines or doses. Avoid repeating the same response."

// Responder is the external generative collaborator. A nil error with
// empty text is valid and treated by callers the same as a failure.
type Responder interface {
	Complete(ctx context.Context, message string) (string, error)
}
