package domain

import "errors"

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRecordNotFound     = errors.New("record not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrMissingField       = errors.New("missing form field")
)
