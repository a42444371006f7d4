package model

import (
	"time"

	"github.com/google/uuid"
)

// Base contains common fields for all models
type Base struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identifier lets generic collection code find an entity's stable key without
// knowing the concrete type.
type Identifier interface {
	Identity() uuid.UUID
}

// Identity implements Identifier for every model embedding Base.
func (b Base) Identity() uuid.UUID {
	return b.ID
}
