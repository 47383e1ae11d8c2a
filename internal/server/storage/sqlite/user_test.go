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

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func newTestUser(email string) *models.User {
	now := time.Now()
	return &models.User{
		ID:           uuid.New().String(),
		FullName:     "Test User",
		Email:        email,
		PasswordHash: "hash123",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage, email string) *models.User {
	user := newTestUser(email)
	require.NoError(t, s.CreateUser(ctx, user))
	return user
}

func TestUserStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "alice@example.com")

	byID, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byID.ID)
	assert.Equal(t, user.FullName, byID.FullName)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, user.PasswordHash, byID.PasswordHash)
	assert.True(t, byID.IsActive)
	assert.False(t, byID.IsVerified)
	assert.Nil(t, byID.LastLogin)

	byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserStorage_GetUserByEmail_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "alice@example.com")

	found, err := s.GetUserByEmail(ctx, "Alice@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	createTestUser(t, ctx, s, "dup@example.com")

	err := s.CreateUser(ctx, newTestUser("dup@example.com"))
	assert.ErrorIs(t, err, storage.ErrEmailTaken)

	// Uniqueness is case-insensitive
	err = s.CreateUser(ctx, newTestUser("DUP@example.com"))
	assert.ErrorIs(t, err, storage.ErrEmailTaken)
}

func TestUserStorage_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "update@example.com")

	user.FullName = "Renamed User"
	user.PasswordHash = "newhash"
	user.IsActive = false
	user.UpdatedAt = time.Now().Add(time.Minute)

	require.NoError(t, s.UpdateUser(ctx, user))

	updated, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", updated.FullName)
	assert.Equal(t, "newhash", updated.PasswordHash)
	assert.False(t, updated.IsActive)
	// Email is not touched by UpdateUser
	assert.Equal(t, "update@example.com", updated.Email)
}

func TestUserStorage_UpdateUser_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("ghost@example.com")
	err := s.UpdateUser(ctx, user)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "login@example.com")

	loginTime := time.Now()
	require.NoError(t, s.UpdateLastLogin(ctx, user.ID, loginTime))

	updated, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastLogin)
	assert.WithinDuration(t, loginTime, *updated.LastLogin, time.Second)

	err = s.UpdateLastLogin(ctx, "missing", loginTime)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
