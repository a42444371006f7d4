package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartlinkhq/admin-console/internal/model"
)

func TestErrorsEmptyDraft(t *testing.T) {
	errs := Errors(model.CreateUserRequest{})

	assert.Contains(t, errs, "email is required")
	assert.Contains(t, errs, "password is required")
	assert.Contains(t, errs, "role is required")
}

func TestErrorsFieldRules(t *testing.T) {
	draft := model.CreateUserRequest{
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	}
	errs := Errors(draft)

	assert.Contains(t, errs, "email must be a valid email address")
	assert.Contains(t, errs, "password must be at least 8 characters")
	assert.Contains(t, errs, "role must be one of: admin, moderator, member")
}

func TestValidDraftHasNoErrors(t *testing.T) {
	draft := model.CreateUserRequest{
		Email:    "ada@example.com",
		Password: "long-enough",
		Role:     model.UserRoleMember,
	}

	assert.Nil(t, Errors(draft))
}

func TestErrorsUUIDRule(t *testing.T) {
	draft := model.CreateSwipeRequest{
		SwiperID:  "nope",
		TargetID:  "also nope",
		Direction: "like",
	}
	errs := Errors(draft)

	assert.Contains(t, errs, "swiper id must be a valid id")
	assert.Contains(t, errs, "target id must be a valid id")
}

func TestErrorsOptionalFieldsSkippedWhenEmpty(t *testing.T) {
	assert.Empty(t, Errors(model.UpdateUserRequest{}))
}
