package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/alert"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/risk"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/rules"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/storage"
)

type stubResponder struct {
	text string
	err  error
}

func (s stubResponder) Complete(ctx context.Context, message string) (string, error) {
	return s.text, s.err
}

type captureNotifier struct {
	calls chan string
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{calls: make(chan string, 1)}
}

func (n *captureNotifier) Notify(ctx context.Context, identity models.Identity, message string) error {
	n.calls <- message
	return nil
}

type failingStore struct {
	attempts int
}

func (f *failingStore) AppendTurn(ctx context.Context, turn *models.ConversationTurn) error {
	f.attempts++
	return errors.New("write failed")
}

func (f *failingStore) QueryTurns(ctx context.Context, ownerID, sessionID string) ([]*models.ConversationTurn, error) {
	return nil, nil
}

func (f *failingStore) DeleteTurns(ctx context.Context, ownerID string) (int64, error) {
	return 0, nil
}

func newTestService(rsp stubResponder, store storage.TurnStorage, notifier alert.Notifier) *Service {
	logger := zap.NewNop()
	if notifier == nil {
		notifier = alert.NewLogNotifier(logger)
	}
	return NewService(
		rsp,
		rules.NewClassifier(rules.NewDefaultCatalog(nil)),
		store,
		risk.NewAnalyzer(nil),
		notifier,
		logger,
	)
}

var testIdentity = models.Identity{UserID: "u1", Email: "pat@example.com"}

func TestResolveReplyPrefersResponder(t *testing.T) {
	svc := newTestService(stubResponder{text: "How long have you had the fever?"}, storage.NewMemoryStorage(), nil)

	got := svc.ResolveReply(context.Background(), "I have a fever")
	assert.Equal(t, "How long have you had the fever?", got)
}

func TestResolveReplyFallsBackOnError(t *testing.T) {
	svc := newTestService(stubResponder{err: errors.New("upstream down")}, storage.NewMemoryStorage(), nil)

	classifier := rules.NewClassifier(rules.NewDefaultCatalog(nil))
	msg := "I have a fever and cough"
	assert.Equal(t, classifier.Match(msg), svc.ResolveReply(context.Background(), msg))
}

func TestResolveReplyFallsBackOnEmptyText(t *testing.T) {
	svc := newTestService(stubResponder{text: ""}, storage.NewMemoryStorage(), nil)

	got := svc.ResolveReply(context.Background(), "hello")
	assert.Equal(t, rules.GenericResponse, got)
}

func TestHandleMessageRecordsTwoTurns(t *testing.T) {
	store := storage.NewMemoryStorage()
	svc := newTestService(stubResponder{text: "Rest and hydrate."}, store, nil)

	reply, err := svc.HandleMessage(context.Background(), testIdentity, "mild headache", "s1")
	require.NoError(t, err)
	assert.Equal(t, "Rest and hydrate.", reply)

	turns, err := store.QueryTurns(context.Background(), "u1", "s1")
	require.NoError(t, err)
	require.Len(t, turns, 2)

	assert.Equal(t, models.SenderUser, turns[0].Sender)
	assert.Equal(t, "mild headache", turns[0].Content)
	assert.Equal(t, models.SenderBot, turns[1].Sender)
	assert.Equal(t, "Rest and hydrate.", turns[1].Content)
	assert.Equal(t, turns[0].SessionID, turns[1].SessionID)
	assert.False(t, turns[1].CreatedAt.Before(turns[0].CreatedAt))
}

func TestHandleMessageRejectsEmpty(t *testing.T) {
	svc := newTestService(stubResponder{text: "hi"}, storage.NewMemoryStorage(), nil)

	_, err := svc.HandleMessage(context.Background(), testIdentity, "", "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestHandleMessageReturnsReplyDespitePersistenceFailure(t *testing.T) {
	store := &failingStore{}
	svc := newTestService(stubResponder{text: "Stay calm."}, store, nil)

	reply, err := svc.HandleMessage(context.Background(), testIdentity, "mild headache", "")
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, "Stay calm.", reply)
	assert.Equal(t, 2, store.attempts, "both writes attempted even when the first fails")
}

func TestHandleMessageEscalatesHighRisk(t *testing.T) {
	notifier := newCaptureNotifier()
	svc := newTestService(stubResponder{text: "Call emergency services."}, storage.NewMemoryStorage(), notifier)

	_, err := svc.HandleMessage(context.Background(), testIdentity, "severe bleeding now", "")
	require.NoError(t, err)

	select {
	case msg := <-notifier.calls:
		assert.Equal(t, "severe bleeding now", msg)
	case <-time.After(time.Second):
		t.Fatal("expected a risk alert")
	}
}

func TestHandleMessageDoesNotEscalateLowRisk(t *testing.T) {
	notifier := newCaptureNotifier()
	svc := newTestService(stubResponder{text: "Rest."}, storage.NewMemoryStorage(), notifier)

	_, err := svc.HandleMessage(context.Background(), testIdentity, "mild headache", "")
	require.NoError(t, err)

	select {
	case <-notifier.calls:
		t.Fatal("unexpected alert for low-risk message")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHistoryNewestFirstCapped(t *testing.T) {
	store := storage.NewMemoryStorage()
	svc := newTestService(stubResponder{text: "ok"}, store, nil)

	base := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, store.AppendTurn(context.Background(), &models.ConversationTurn{
			ID:        string(rune('a' + i)),
			OwnerID:   "u1",
			Sender:    models.SenderUser,
			Content:   "msg",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	turns, err := svc.History(context.Background(), "u1", 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.True(t, turns[0].CreatedAt.After(turns[1].CreatedAt))
}
