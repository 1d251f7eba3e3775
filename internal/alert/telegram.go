package alert

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
)

// TelegramNotifier sends risk alerts to a configured care-contact chat
// (a doctor or guardian monitoring the patient).
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert bot: %w", err)
	}

	return &TelegramNotifier{
		api:    api,
		chatID: chatID,
		logger: logger,
	}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, identity models.Identity, message string) error {
	msg := tgbotapi.NewMessage(n.chatID, FormatAlert(identity, message, time.Now()))

	if _, err := n.api.Send(msg); err != nil {
		n.logger.Error("Failed to send alert",
			zap.Error(err),
			zap.String("user_id", identity.UserID))
		return fmt.Errorf("failed to send alert: %w", err)
	}

	n.logger.Info("Risk alert sent",
		zap.String("user_id", identity.UserID),
		zap.Int64("chat_id", n.chatID))
	return nil
}
