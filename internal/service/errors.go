package service

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrNotFound           = errors.New("not found")
	ErrEmptyContent       = errors.New("empty content")
	ErrMessagesDisabled   = errors.New("receiver does not accept messages")
	ErrValidation         = errors.New("validation failed")
)
