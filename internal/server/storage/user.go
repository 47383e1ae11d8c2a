package storage

import (
	"context"
	"time"

	"github.com/codequest-ai/codequest/internal/models"
)

// UserStorage defines the interface for user persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrEmailTaken if the email is already used (case-insensitive)
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email (case-insensitive)
	// Returns ErrUserNotFound if the user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID
	// Returns ErrUserNotFound if the user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateUser persists changed user fields (name, hash, flags, updated_at)
	// Returns ErrUserNotFound if the user doesn't exist
	UpdateUser(ctx context.Context, user *models.User) error

	// UpdateLastLogin sets the last login timestamp
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
