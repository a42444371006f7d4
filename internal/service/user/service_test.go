package user

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/heartlinkhq/admin-console/internal/model"
)

func TestSearchTextIncludesProfileFields(t *testing.T) {
	u := model.User{Email: "ada@example.com", Role: "member", Status: "active"}
	assert.Equal(t, []string{"ada@example.com", "member", "active"}, SearchText(u))

	u.Profile = &model.Profile{DisplayName: "Ada", City: "London"}
	fields := SearchText(u)
	assert.Contains(t, fields, "Ada")
	assert.Contains(t, fields, "London")
}

func TestValidateUserData(t *testing.T) {
	assert.NotEmpty(t, ValidateUserData(model.CreateUserRequest{}))
	assert.Empty(t, ValidateUserData(model.CreateUserRequest{
		Email:    "ada@example.com",
		Password: "long-enough",
		Role:     model.UserRoleMember,
	}))
}

func TestFormatUserForDisplayNameFallback(t *testing.T) {
	u := model.User{Email: "ada@example.com"}
	assert.Equal(t, "ada@example.com", FormatUserForDisplay(u).DisplayName)

	u.Profile = &model.Profile{DisplayName: "  "}
	assert.Equal(t, "ada@example.com", FormatUserForDisplay(u).DisplayName)

	u.Profile.DisplayName = "Ada"
	assert.Equal(t, "Ada", FormatUserForDisplay(u).DisplayName)
}

func TestFormatUserForDisplayIdempotent(t *testing.T) {
	birth := time.Now().AddDate(-30, 0, 0)
	u := model.User{
		Email:   "ada@example.com",
		Profile: &model.Profile{DisplayName: "Ada", BirthDate: &birth},
	}

	first := FormatUserForDisplay(u)
	second := FormatUserForDisplay(first.User)
	assert.Equal(t, first, second)
	assert.Equal(t, 30, first.Age)
}

func TestAgeBeforeAnniversary(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 29, age(time.Date(1996, time.July, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 30, age(time.Date(1996, time.May, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, age(now.AddDate(1, 0, 0), now))
}

func TestLabel(t *testing.T) {
	id := uuid.New()
	u := model.User{Base: model.Base{ID: id}, Email: "ada@example.com"}
	assert.Contains(t, Label(u), "ada@example.com")
	assert.Contains(t, Label(u), id.String())
}
