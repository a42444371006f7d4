package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscription plan constants
const (
	PlanFree     = "free"
	PlanPlus     = "plus"
	PlanPremium  = "premium"
	PlanPlatinum = "platinum"
)

// Subscription status constants
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusExpired  = "expired"
	SubscriptionStatusCanceled = "canceled"
)

// Subscription is a user's paid plan for a billing period.
type Subscription struct {
	Base
	UserID      uuid.UUID  `json:"user_id"`
	Plan        string     `json:"plan"`
	Status      string     `json:"status"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
}

// CreateSubscriptionRequest represents subscription creation parameters
type CreateSubscriptionRequest struct {
	UserID      string    `json:"user_id" binding:"required,uuid"`
	Plan        string    `json:"plan" binding:"required,oneof=free plus premium platinum"`
	PeriodStart time.Time `json:"period_start" binding:"required"`
	PeriodEnd   time.Time `json:"period_end" binding:"required"`
}

// UpdateSubscriptionRequest represents subscription update parameters
type UpdateSubscriptionRequest struct {
	Plan      *string    `json:"plan,omitempty" binding:"omitempty,oneof=free plus premium platinum"`
	Status    *string    `json:"status,omitempty" binding:"omitempty,oneof=active expired canceled"`
	PeriodEnd *time.Time `json:"period_end,omitempty"`
}
