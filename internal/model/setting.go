package model

import "github.com/google/uuid"

// Setting holds a user's discovery and notification preferences.
type Setting struct {
	Base
	UserID             uuid.UUID `json:"user_id"`
	DiscoveryEnabled   bool      `json:"discovery_enabled"`
	MaxDistanceKm      int       `json:"max_distance_km"`
	AgeMin             int       `json:"age_min"`
	AgeMax             int       `json:"age_max"`
	ShowOnlineStatus   bool      `json:"show_online_status"`
	PushNotifications  bool      `json:"push_notifications"`
	EmailNotifications bool      `json:"email_notifications"`
}

// UpdateSettingRequest represents setting update parameters. All fields are
// pointers so a partial update leaves unmentioned preferences alone.
type UpdateSettingRequest struct {
	DiscoveryEnabled   *bool `json:"discovery_enabled,omitempty"`
	MaxDistanceKm      *int  `json:"max_distance_km,omitempty" binding:"omitempty,min=1,max=500"`
	AgeMin             *int  `json:"age_min,omitempty" binding:"omitempty,min=18,max=100"`
	AgeMax             *int  `json:"age_max,omitempty" binding:"omitempty,min=18,max=100"`
	ShowOnlineStatus   *bool `json:"show_online_status,omitempty"`
	PushNotifications  *bool `json:"push_notifications,omitempty"`
	EmailNotifications *bool `json:"email_notifications,omitempty"`
}
