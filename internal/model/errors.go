package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidRole   = errors.New("invalid role")

	// Celebrity errors
	ErrCelebrityNotFound = errors.New("celebrity not found")
	ErrInvalidBirthYear  = errors.New("invalid birth year")

	// Game score errors
	ErrScoreNotFound     = errors.New("score not found")
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// Premium request errors
	ErrRequestNotFound         = errors.New("premium request not found")
	ErrInvalidStatus           = errors.New("invalid request status")
	ErrAlreadyPremium          = errors.New("user already has premium access")
	ErrPendingRequestExists    = errors.New("user already has a pending premium request")
	ErrRequestAlreadyProcessed = errors.New("premium request has already been processed")
)
