package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrInvalidInput  = errors.New("username and password are required")
	ErrUsernameTaken = errors.New("username already exists")
	ErrUnknownUser   = errors.New("incorrect username")
	ErrWrongPassword = errors.New("incorrect password")

	// Session errors
	ErrNotLoggedIn     = errors.New("no active session")
	ErrAlreadyLoggedIn = errors.New("a session is already active")
	ErrGameFinished    = errors.New("game is already finished")

	// Board errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrInvalidValue    = errors.New("invalid cell value")

	// Storage errors
	ErrCorruptData = errors.New("stored data is corrupt")
	ErrPersistence = errors.New("persistence failure")
)
