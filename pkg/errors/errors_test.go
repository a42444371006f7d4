package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrValidation, CodeOf(NewValidation("bad input")))
	assert.Equal(t, ErrTransport, CodeOf(NewTransport(stderrors.New("refused"))))
	assert.Equal(t, ErrInternal, CodeOf(stderrors.New("foreign")))
}

func TestCodeOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("while saving: %w", NewBusy("save"))
	assert.Equal(t, ErrBusy, CodeOf(wrapped))
	assert.True(t, IsBusy(wrapped))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "name is required", MessageOf(NewValidation("name is required")))
	assert.Equal(t, "goal not found", MessageOf(NewNotFound("goal")))
	assert.Equal(t, "something went wrong, please try again", MessageOf(stderrors.New("dial tcp: refused")))
}

func TestTransportErrorKeepsCause(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewTransport(cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "network request failed", MessageOf(err))
}

func TestApplicationErrorDefaultMessage(t *testing.T) {
	assert.Equal(t, "request failed", NewApplication("").Message)
	assert.Equal(t, "email taken", NewApplication("email taken").Message)
}
