package model

import (
	"github.com/google/uuid"
)

// Swipe direction constants
const (
	SwipeDirectionLike      = "like"
	SwipeDirectionPass      = "pass"
	SwipeDirectionSuperlike = "superlike"
)

// Swipe is one user's verdict on another. Swipes are append-only: the
// backend exposes no edit or delete, so the console exposes none either.
type Swipe struct {
	Base
	SwiperID  uuid.UUID `json:"swiper_id"`
	TargetID  uuid.UUID `json:"target_id"`
	Direction string    `json:"direction"`
	IsMatch   bool      `json:"is_match"`
}

// CreateSwipeRequest represents swipe creation parameters
type CreateSwipeRequest struct {
	SwiperID  string `json:"swiper_id" binding:"required,uuid"`
	TargetID  string `json:"target_id" binding:"required,uuid"`
	Direction string `json:"direction" binding:"required,oneof=like pass superlike"`
}
