package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/alert"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/responder"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/risk"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/rules"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/storage"
)

var (
	ErrEmptyMessage = errors.New("message is required")
	ErrPersistence  = errors.New("failed to persist conversation")
)

const alertTimeout = 10 * time.Second

type Service struct {
	responder  responder.Responder
	classifier *rules.Classifier
	store      storage.TurnStorage
	analyzer   *risk.Analyzer
	notifier   alert.Notifier
	logger     *zap.Logger
}

func NewService(
	rsp responder.Responder,
	classifier *rules.Classifier,
	store storage.TurnStorage,
	analyzer *risk.Analyzer,
	notifier alert.Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		responder:  rsp,
		classifier: classifier,
		store:      store,
		analyzer:   analyzer,
		notifier:   notifier,
		logger:     logger,
	}
}

// ResolveReply produces a user-displayable reply for any message. The
// generative responder gets a single attempt; any error or empty text
// falls back to the rule classifier, which is total, so the classifier
// result being empty would be a bug — the generic response covers it.
func (s *Service) ResolveReply(ctx context.Context, message string) string {
	reply, err := s.responder.Complete(ctx, message)
	if err != nil || reply == "" {
		if err != nil {
			s.logger.Warn("Generative responder unavailable, using rule fallback", zap.Error(err))
		}
		reply = s.classifier.Match(message)
	}
	if reply == "" {
		reply = rules.GenericResponse
	}
	return reply
}

// HandleMessage resolves a reply for the inbound message, records both
// conversation turns, and triggers risk escalation. The reply is always
// returned; a non-nil error wraps ErrPersistence and means one or both
// turn writes failed after the reply was resolved.
func (s *Service) HandleMessage(ctx context.Context, identity models.Identity, message, sessionID string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}

	reply := s.ResolveReply(ctx, message)

	err := s.recordTurns(ctx, identity.UserID, sessionID, message, reply)

	if s.analyzer.AssessRisk(message) {
		s.escalate(identity, message)
	}

	return reply, err
}

// recordTurns persists the user turn then the bot turn. Both writes are
// attempted even if the first fails; the bot turn's timestamp is taken
// after the user turn's so relative order within a session holds.
func (s *Service) recordTurns(ctx context.Context, ownerID, sessionID, message, reply string) error {
	userErr := s.store.AppendTurn(ctx, &models.ConversationTurn{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Sender:    models.SenderUser,
		Content:   message,
		SessionID: sessionID,
		CreatedAt: time.Now(),
	})

	botErr := s.store.AppendTurn(ctx, &models.ConversationTurn{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Sender:    models.SenderBot,
		Content:   reply,
		SessionID: sessionID,
		CreatedAt: time.Now(),
	})

	if err := errors.Join(userErr, botErr); err != nil {
		s.logger.Error("Failed to persist conversation turns",
			zap.Error(err),
			zap.String("owner_id", ownerID),
			zap.String("session_id", sessionID))
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// escalate notifies the care contact without blocking the reply.
// Notification failures are logged and swallowed.
func (s *Service) escalate(identity models.Identity, message string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), alertTimeout)
		defer cancel()

		if err := s.notifier.Notify(ctx, identity, message); err != nil {
			s.logger.Error("Risk escalation failed",
				zap.Error(err),
				zap.String("user_id", identity.UserID))
		}
	}()
}

// History returns the owner's most recent turns, newest first, capped
// at limit.
func (s *Service) History(ctx context.Context, ownerID string, limit int) ([]*models.ConversationTurn, error) {
	turns, err := s.store.QueryTurns(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}

	// QueryTurns is oldest-first; history is displayed newest-first.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	if limit > 0 && len(turns) > limit {
		turns = turns[:limit]
	}
	return turns, nil
}

// Session returns one session's turns in display order, oldest first.
func (s *Service) Session(ctx context.Context, ownerID, sessionID string) ([]*models.ConversationTurn, error) {
	return s.store.QueryTurns(ctx, ownerID, sessionID)
}

// Clear removes all of the owner's turns and reports how many.
func (s *Service) Clear(ctx context.Context, ownerID string) (int64, error) {
	return s.store.DeleteTurns(ctx, ownerID)
}

// Escalate sends a one-shot emergency alert, used by the emergency
// endpoint where the user explicitly asks for help.
func (s *Service) Escalate(ctx context.Context, identity models.Identity, message string) error {
	return s.notifier.Notify(ctx, identity, message)
}
