package alert

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
)

// Notifier delivers a one-shot alert about a user. Best effort: callers
// fire it asynchronously and never let a failure affect the chat reply.
type Notifier interface {
	Notify(ctx context.Context, identity models.Identity, message string) error
}

// FormatAlert renders the alert body sent to the care contact.
func FormatAlert(identity models.Identity, message string, at time.Time) string {
	return fmt.Sprintf(
		"⚠️ High-risk health symptoms detected.\n\nPatient: %s\nSymptoms: %s\nTime: %s\n\nImmediate medical attention is advised.",
		identity.Email, message, at.Format(time.RFC1123))
}

// LogNotifier records alerts to the log only. Used when no alert
// transport is configured, so escalation remains observable.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, identity models.Identity, message string) error {
	n.logger.Warn("Risk alert (no transport configured)",
		zap.String("user_id", identity.UserID),
		zap.String("message", message))
	return nil
}
