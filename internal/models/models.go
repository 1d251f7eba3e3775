package models

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ConversationTurn is one persisted message, user or bot. Two turns are
// written per accepted inbound message, user first.
type ConversationTurn struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Reminder is a scheduled medication/appointment reminder.
type Reminder struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Time      time.Time `json:"time"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the verified caller yielded by the identity provider.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
