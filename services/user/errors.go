package user

import "errors"

// Sentinel errors surfaced to handlers, which map them onto the HTTP
// error taxonomy (400/401/404).
var (
	ErrMissingFields      = errors.New("please provide all required fields")
	ErrInvalidRole        = errors.New("role must be client or provider")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
