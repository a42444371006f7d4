package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is a chat message inside a match conversation.
type Message struct {
	Base
	MatchID  uuid.UUID  `json:"match_id"`
	SenderID uuid.UUID  `json:"sender_id"`
	Body     string     `json:"body"`
	SentAt   time.Time  `json:"sent_at"`
	ReadAt   *time.Time `json:"read_at,omitempty"`
}

// CreateMessageRequest represents message creation parameters
type CreateMessageRequest struct {
	MatchID  string `json:"match_id" binding:"required,uuid"`
	SenderID string `json:"sender_id" binding:"required,uuid"`
	Body     string `json:"body" binding:"required,max=2000"`
}
