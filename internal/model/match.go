package model

import (
	"time"

	"github.com/google/uuid"
)

// Match status constants
const (
	MatchStatusActive    = "active"
	MatchStatusUnmatched = "unmatched"
)

// Match links two users who swiped right on each other.
type Match struct {
	Base
	UserAID   uuid.UUID  `json:"user_a_id"`
	UserBID   uuid.UUID  `json:"user_b_id"`
	Status    string     `json:"status"`
	MatchedAt time.Time  `json:"matched_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// PotentialMatch is a scored candidate returned by the recommendation
// endpoint. The score is computed server-side; the console only displays it.
type PotentialMatch struct {
	User     User    `json:"user"`
	Score    float64 `json:"score"`
	Distance float64 `json:"distance_km"`
}
