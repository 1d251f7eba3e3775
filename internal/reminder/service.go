package reminder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/storage"
)

var ErrMissingFields = errors.New("title and time are required")

type Service struct {
	store  storage.ReminderStorage
	logger *zap.Logger
}

func NewService(store storage.ReminderStorage, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) Create(ctx context.Context, ownerID, title string, at time.Time) (*models.Reminder, error) {
	if title == "" || at.IsZero() {
		return nil, ErrMissingFields
	}

	reminder := &models.Reminder{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     title,
		Time:      at,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateReminder(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*models.Reminder, error) {
	return s.store.GetReminders(ctx, ownerID)
}

func (s *Service) MarkDone(ctx context.Context, ownerID, reminderID string) (*models.Reminder, error) {
	return s.store.MarkReminderDone(ctx, ownerID, reminderID)
}
