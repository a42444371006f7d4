package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies an application error
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error codes cover the failure modes a console screen has to distinguish:
// pre-submit validation, a server that answered success:false, and a request
// that never produced a usable envelope at all.
const (
	ErrValidation ErrorCode = iota + 1000
	ErrApplication
	ErrTransport
	ErrNotFound
	ErrUnauthorized
	ErrBusy
	ErrInternal
)

func NewValidation(message string) *AppError {
	return &AppError{Code: ErrValidation, Message: message}
}

func NewApplication(message string) *AppError {
	if message == "" {
		message = "request failed"
	}
	return &AppError{Code: ErrApplication, Message: message}
}

func NewTransport(err error) *AppError {
	return &AppError{Code: ErrTransport, Message: "network request failed", Err: err}
}

func NewNotFound(resource string) *AppError {
	return &AppError{Code: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func NewUnauthorized(err error) *AppError {
	return &AppError{Code: ErrUnauthorized, Message: "unauthorized", Err: err}
}

func NewBusy(operation string) *AppError {
	return &AppError{Code: ErrBusy, Message: fmt.Sprintf("%s already in progress", operation)}
}

func NewInternal(err error) *AppError {
	return &AppError{Code: ErrInternal, Message: "internal error", Err: err}
}

// CodeOf returns the error's code, or ErrInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

// MessageOf returns the user-facing message for any error. AppError messages
// are already user-facing; anything else gets a generic fallback.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "something went wrong, please try again"
}

func IsTransport(err error) bool   { return CodeOf(err) == ErrTransport }
func IsApplication(err error) bool { return CodeOf(err) == ErrApplication }
func IsValidation(err error) bool  { return CodeOf(err) == ErrValidation }
func IsBusy(err error) bool        { return CodeOf(err) == ErrBusy }
