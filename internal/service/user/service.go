package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/form"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/service/crud"
)

// Service manages platform accounts through the /users endpoints.
type Service struct {
	crud.Service[model.User, model.CreateUserRequest, model.UpdateUserRequest]
}

func NewService(client *apiclient.Client) *Service {
	return &Service{Service: crud.New[model.User, model.CreateUserRequest, model.UpdateUserRequest](client, "/users")}
}

// SearchText returns the stringified fields the list search matches against.
func SearchText(u model.User) []string {
	fields := []string{u.Email, u.Role, u.Status}
	if u.Profile != nil {
		fields = append(fields, u.Profile.DisplayName, u.Profile.City)
	}
	return fields
}

// ValidateUserData checks a create payload without touching the network.
func ValidateUserData(req model.CreateUserRequest) []string {
	return form.Errors(req)
}

// DisplayUser is a user decorated with derived display-only fields.
type DisplayUser struct {
	model.User
	DisplayName string `json:"display_name"`
	Age         int    `json:"age"`
}

// FormatUserForDisplay derives the fields screens render but the API does
// not send: a display name with an email fallback, and age from birth date.
// Pure function; formatting twice yields the same result.
func FormatUserForDisplay(u model.User) DisplayUser {
	display := DisplayUser{User: u, DisplayName: u.Email}
	if u.Profile != nil {
		if name := strings.TrimSpace(u.Profile.DisplayName); name != "" {
			display.DisplayName = name
		}
		if u.Profile.BirthDate != nil {
			display.Age = age(*u.Profile.BirthDate, time.Now())
		}
	}
	return display
}

// Label identifies a user in confirmation prompts.
func Label(u model.User) string {
	return fmt.Sprintf("%s (%s)", FormatUserForDisplay(u).DisplayName, u.ID)
}

func age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
