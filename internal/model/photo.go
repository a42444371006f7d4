package model

import "github.com/google/uuid"

// Photo is a profile photo. Path is relative to the media base URL; the
// console builds the absolute URL at display time.
type Photo struct {
	Base
	UserID    uuid.UUID `json:"user_id"`
	Path      string    `json:"path"`
	Position  int       `json:"position"`
	IsPrimary bool      `json:"is_primary"`
}

// CreatePhotoRequest represents photo creation parameters
type CreatePhotoRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	Path     string `json:"path" binding:"required"`
	Position int    `json:"position" binding:"min=0"`
}
