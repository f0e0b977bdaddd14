package services

import (
	"errors"
)

// Sentinel errors surfaced to the request boundary, where handlers translate
// them into flash notices and redirects.
var (
	ErrDuplicateIdentity  = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("access unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrUpstream           = errors.New("book search upstream failure")
	ErrValidation         = errors.New("invalid input")
)
