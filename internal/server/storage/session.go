package storage

import (
	"context"

	"github.com/codequest-ai/codequest/internal/models"
)

// SessionStorage defines the interface for session persistence
type SessionStorage interface {
	// CreateSession stores a new session record
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSessionByToken retrieves a session by its bearer token
	// Returns ErrSessionNotFound if the token doesn't exist
	GetSessionByToken(ctx context.Context, token string) (*models.Session, error)

	// DeleteSessionByToken deletes a session by its bearer token.
	// Idempotent: deleting an unknown token is a no-op, not an error.
	DeleteSessionByToken(ctx context.Context, token string) error

	// DeleteUserSessions deletes all sessions for a user
	// Returns the number of deleted sessions
	DeleteUserSessions(ctx context.Context, userID string) (int, error)

	// DeleteExpiredSessions removes all expired session rows
	// Returns the number of deleted sessions
	DeleteExpiredSessions(ctx context.Context) (int, error)
}
