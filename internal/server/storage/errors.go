package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that the user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that a user with this email already exists.
	// Email comparison is case-insensitive; the database UNIQUE constraint
	// is the authoritative guard.
	ErrEmailTaken = errors.New("email already taken")

	// ErrSessionNotFound indicates that the session token was not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrRoomNotFound indicates that the battle room was not found
	ErrRoomNotFound = errors.New("battle room not found")
)
