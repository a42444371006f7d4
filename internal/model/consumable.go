package model

import "github.com/google/uuid"

// Consumable kind constants
const (
	ConsumableSuperlikes = "superlikes"
	ConsumableBoosts     = "boosts"
	ConsumableRewinds    = "rewinds"
)

// Consumable is a user's balance of a spendable perk. Balances are granted
// and adjusted, never deleted (the original product kept delete disabled).
type Consumable struct {
	Base
	UserID  uuid.UUID `json:"user_id"`
	Kind    string    `json:"kind"`
	Balance int       `json:"balance"`
}

// GrantConsumableRequest credits a user's balance of one consumable kind.
type GrantConsumableRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Kind   string `json:"kind" binding:"required,oneof=superlikes boosts rewinds"`
	Amount int    `json:"amount" binding:"required,min=1"`
}

// UpdateConsumableRequest sets an absolute balance.
type UpdateConsumableRequest struct {
	Balance int `json:"balance" binding:"min=0"`
}
