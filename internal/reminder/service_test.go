package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/storage"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(ctx context.Context, identity models.Identity, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(storage.NewMemoryStorage(), zap.NewNop())

	_, err := svc.Create(context.Background(), "u1", "", time.Now())
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(context.Background(), "u1", "take insulin", time.Time{})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestCreateAndList(t *testing.T) {
	svc := NewService(storage.NewMemoryStorage(), zap.NewNop())
	ctx := context.Background()

	later := time.Now().Add(time.Hour)
	created, err := svc.Create(ctx, "u1", "doctor visit", later)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Done)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "doctor visit", list[0].Title)

	done, err := svc.MarkDone(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.True(t, done.Done)
}

func TestSweepDispatchesDueRemindersOnce(t *testing.T) {
	store := storage.NewMemoryStorage()
	notifier := &recordingNotifier{}
	logger := zap.NewNop()

	svc := NewService(store, logger)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "take insulin", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", "doctor visit", time.Now().Add(time.Hour))
	require.NoError(t, err)

	scheduler := NewScheduler(store, notifier, time.Minute, logger)

	scheduler.Sweep()
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "take insulin")

	// The dispatched reminder is marked done and not re-fired.
	scheduler.Sweep()
	assert.Len(t, notifier.messages, 1)
}
