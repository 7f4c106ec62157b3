package services

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidPIN        = errors.New("invalid payment pin")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
