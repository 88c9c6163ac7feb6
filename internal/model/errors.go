package model

import "errors"

var (
	// Account related errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token related errors
	ErrInvalidToken = errors.New("invalid token")

	// Preference related errors
	ErrPreferencesNotFound = errors.New("preferences not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
