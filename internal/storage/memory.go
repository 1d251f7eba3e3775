package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
)

type MemoryStorage struct {
	mu        sync.RWMutex
	turns     []*models.ConversationTurn
	reminders map[string]*models.Reminder
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		reminders: make(map[string]*models.Reminder),
	}
}

func (s *MemoryStorage) AppendTurn(ctx context.Context, turn *models.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *turn
	s.turns = append(s.turns, &copied)
	return nil
}

func (s *MemoryStorage) QueryTurns(ctx context.Context, ownerID, sessionID string) ([]*models.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.ConversationTurn
	for _, turn := range s.turns {
		if turn.OwnerID != ownerID {
			continue
		}
		if sessionID != "" && turn.SessionID != sessionID {
			continue
		}
		copied := *turn
		out = append(out, &copied)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStorage) DeleteTurns(ctx context.Context, ownerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []*models.ConversationTurn
	var deleted int64
	for _, turn := range s.turns {
		if turn.OwnerID == ownerID {
			deleted++
			continue
		}
		kept = append(kept, turn)
	}
	s.turns = kept
	return deleted, nil
}

func (s *MemoryStorage) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *reminder
	s.reminders[reminder.ID] = &copied
	return nil
}

func (s *MemoryStorage) GetReminders(ctx context.Context, ownerID string) ([]*models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Reminder
	for _, r := range s.reminders {
		if r.OwnerID != ownerID {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})
	return out, nil
}

func (s *MemoryStorage) MarkReminderDone(ctx context.Context, ownerID, reminderID string) (*models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.reminders[reminderID]
	if !exists || r.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	r.Done = true
	copied := *r
	return &copied, nil
}

func (s *MemoryStorage) DueReminders(ctx context.Context, now time.Time) ([]*models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Reminder
	for _, r := range s.reminders {
		if r.Done || r.Time.After(now) {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})
	return out, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
