package services

import "errors"

// Error kinds controllers translate to HTTP statuses.
var (
	ErrEmailTaken = errors.New("email already registered")

	// Same message whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrForbidden    = errors.New("not authorized")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
