package handlers

import (
	"context"

	"github.com/codequest-ai/codequest/internal/models"
)

type contextKey string

// UserKey is the context key under which the session middleware stores the
// resolved user.
const UserKey contextKey = "user"

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// GetUser extracts the authenticated user from the context.
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok
}
