package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codequest-ai/codequest/internal/models"
	"github.com/codequest-ai/codequest/internal/server/storage"
)

func newTestSession(userID string, expiresAt time.Time) *models.Session {
	return &models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     uuid.New().String(),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
}

func TestSessionStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "session@example.com")
	session := newTestSession(user.ID, time.Now().Add(24*time.Hour))

	require.NoError(t, s.CreateSession(ctx, session))

	found, err := s.GetSessionByToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, session.Token, found.Token)
	assert.WithinDuration(t, session.ExpiresAt, found.ExpiresAt, time.Second)
}

func TestSessionStorage_GetSession_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetSessionByToken(ctx, "missing-token")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSessionStorage_DeleteSessionByToken_Idempotent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "revoke@example.com")
	session := newTestSession(user.ID, time.Now().Add(time.Hour))
	require.NoError(t, s.CreateSession(ctx, session))

	require.NoError(t, s.DeleteSessionByToken(ctx, session.Token))

	_, err := s.GetSessionByToken(ctx, session.Token)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Deleting again, or deleting a never-issued token, is a no-op
	assert.NoError(t, s.DeleteSessionByToken(ctx, session.Token))
	assert.NoError(t, s.DeleteSessionByToken(ctx, "never-issued"))
}

func TestSessionStorage_DeleteUserSessions(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "multi@example.com")
	other := createTestUser(t, ctx, s, "other@example.com")

	require.NoError(t, s.CreateSession(ctx, newTestSession(user.ID, time.Now().Add(time.Hour))))
	require.NoError(t, s.CreateSession(ctx, newTestSession(user.ID, time.Now().Add(time.Hour))))
	otherSession := newTestSession(other.ID, time.Now().Add(time.Hour))
	require.NoError(t, s.CreateSession(ctx, otherSession))

	deleted, err := s.DeleteUserSessions(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Other users are untouched
	_, err = s.GetSessionByToken(ctx, otherSession.Token)
	assert.NoError(t, err)
}

func TestSessionStorage_DeleteExpiredSessions(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "expired@example.com")

	expired := newTestSession(user.ID, time.Now().Add(-time.Hour))
	live := newTestSession(user.ID, time.Now().Add(time.Hour))
	require.NoError(t, s.CreateSession(ctx, expired))
	require.NoError(t, s.CreateSession(ctx, live))

	deleted, err := s.DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = s.GetSessionByToken(ctx, expired.Token)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	_, err = s.GetSessionByToken(ctx, live.Token)
	assert.NoError(t, err)
}
