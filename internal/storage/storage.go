package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
)

var ErrNotFound = errors.New("not found")

type Storage interface {
	TurnStorage
	ReminderStorage
	Close() error
}

type TurnStorage interface {
	// AppendTurn persists one conversation turn. The turn's CreatedAt is
	// set by the caller so relative ordering within a session is explicit.
	AppendTurn(ctx context.Context, turn *models.ConversationTurn) error

	// QueryTurns returns the owner's turns, oldest first. A non-empty
	// sessionID restricts the result to that session.
	QueryTurns(ctx context.Context, ownerID, sessionID string) ([]*models.ConversationTurn, error)

	// DeleteTurns removes all of the owner's turns and reports the count.
	DeleteTurns(ctx context.Context, ownerID string) (int64, error)
}

type ReminderStorage interface {
	CreateReminder(ctx context.Context, reminder *models.Reminder) error
	GetReminders(ctx context.Context, ownerID string) ([]*models.Reminder, error)
	MarkReminderDone(ctx context.Context, ownerID, reminderID string) (*models.Reminder, error)

	// DueReminders returns reminders not yet done whose time is at or
	// before now. Used by the scheduler sweep.
	DueReminders(ctx context.Context, now time.Time) ([]*models.Reminder, error)
}
