package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/alert"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/storage"
)

const sweepTimeout = 30 * time.Second

// Scheduler sweeps for due reminders on a fixed interval and dispatches
// them through the notifier. A reminder is marked done only after its
// notification is sent, so a failed send is retried on the next sweep.
type Scheduler struct {
	store    storage.ReminderStorage
	notifier alert.Notifier
	interval time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewScheduler(store storage.ReminderStorage, notifier alert.Notifier, interval time.Duration, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		store:    store,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start() error {
	s.cron = cron.New()

	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), s.Sweep)
	if err != nil {
		return fmt.Errorf("failed to register reminder sweep: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Reminder scheduler started", zap.Duration("interval", s.interval))
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Sweep dispatches every due reminder once.
func (s *Scheduler) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	due, err := s.store.DueReminders(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to query due reminders", zap.Error(err))
		return
	}

	for _, reminder := range due {
		identity := models.Identity{UserID: reminder.OwnerID}
		message := fmt.Sprintf("Reminder: %s (scheduled for %s)",
			reminder.Title, reminder.Time.Format(time.RFC1123))

		if err := s.notifier.Notify(ctx, identity, message); err != nil {
			s.logger.Error("Failed to dispatch reminder",
				zap.Error(err),
				zap.String("reminder_id", reminder.ID))
			continue
		}

		if _, err := s.store.MarkReminderDone(ctx, reminder.OwnerID, reminder.ID); err != nil {
			s.logger.Error("Failed to mark reminder done",
				zap.Error(err),
				zap.String("reminder_id", reminder.ID))
		}
	}
}
