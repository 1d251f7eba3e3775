package responder

import (
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type OpenAIResponder struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	logger      *zap.Logger
}

func NewOpenAIResponder(apiKey string, model string, maxTokens int, temperature float64, timeout time.Duration, logger *zap.Logger) *OpenAIResponder {
	return &OpenAIResponder{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		timeout:     timeout,
		logger:      logger,
	}
}

// Complete makes a single chat-completion attempt. The timeout bounds
// the call so a slow upstream cannot stall the request; retries are the
// caller's decision, not made here.
func (r *OpenAIResponder) Complete(ctx context.Context, message string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	resp, err := r.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: r.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: SystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: message,
				},
			},
			MaxTokens:   r.maxTokens,
			Temperature: float32(r.temperature),
		},
	)

	if err != nil {
		r.logger.Error("Failed to get completion", zap.Error(err))
		return "", err
	}

	if len(resp.Choices) == 0 {
		r.logger.Warn("Completion returned no choices")
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
