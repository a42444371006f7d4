package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification kind constants
const (
	NotificationNewMatch   = "new_match"
	NotificationNewMessage = "new_message"
	NotificationSystem     = "system"
)

// Notification is an in-app notification for a user.
type Notification struct {
	Base
	UserID uuid.UUID  `json:"user_id"`
	Kind   string     `json:"kind"`
	Title  string     `json:"title"`
	Body   string     `json:"body"`
	ReadAt *time.Time `json:"read_at,omitempty"`
}

// CreateNotificationRequest represents notification creation parameters
type CreateNotificationRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Kind   string `json:"kind" binding:"required,oneof=new_match new_message system"`
	Title  string `json:"title" binding:"required,max=200"`
	Body   string `json:"body" binding:"max=2000"`
}

// MarkReadRequest marks a batch of notifications as read.
type MarkReadRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}
