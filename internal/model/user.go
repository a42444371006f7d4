package model

import (
	"time"

	"github.com/google/uuid"
)

// User status constants
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
	UserStatusBanned    = "banned"
)

// User role constants
const (
	UserRoleAdmin     = "admin"
	UserRoleModerator = "moderator"
	UserRoleMember    = "member"
)

// User represents a platform account. Profile is optional: list endpoints may
// return bare accounts, detail endpoints include the nested profile.
type User struct {
	Base
	Email         string     `json:"email"`
	Password      string     `json:"password,omitempty"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	EmailVerified bool       `json:"email_verified"`
	LastActiveAt  *time.Time `json:"last_active_at,omitempty"`
	Profile       *Profile   `json:"profile,omitempty"`
}

// Profile is the dating profile attached to a user.
type Profile struct {
	UserID      uuid.UUID   `json:"user_id"`
	DisplayName string      `json:"display_name"`
	Bio         string      `json:"bio"`
	Gender      string      `json:"gender"`
	BirthDate   *time.Time  `json:"birth_date,omitempty"`
	City        string      `json:"city"`
	Latitude    float64     `json:"latitude,omitempty"`
	Longitude   float64     `json:"longitude,omitempty"`
	GoalIDs     []uuid.UUID `json:"goal_ids,omitempty"`
	InterestIDs []uuid.UUID `json:"interest_ids,omitempty"`
}

// CreateUserRequest represents user creation parameters
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin moderator member"`
	Status   string `json:"status" binding:"omitempty,oneof=active inactive suspended banned"`
}

// UpdateUserRequest represents user update parameters
type UpdateUserRequest struct {
	Email   *string  `json:"email,omitempty" binding:"omitempty,email"`
	Role    *string  `json:"role,omitempty" binding:"omitempty,oneof=admin moderator member"`
	Status  *string  `json:"status,omitempty" binding:"omitempty,oneof=active inactive suspended banned"`
	Profile *Profile `json:"profile,omitempty"`
}
