package domain

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidTransition = errors.New("booking status transition is not allowed")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrSessionNotFound  = errors.New("session not found")
	ErrValidation       = errors.New("validation error")
	ErrUnknownEventType = errors.New("unknown calendar event type")
)
