// Package service contains the authentication business logic. AuthService
// owns the rule for what counts as "currently authenticated": it is the
// only component that creates or invalidates sessions.
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codequest-ai/codequest/internal/crypto"
	"github.com/codequest-ai/codequest/internal/models"
	"github.com/codequest-ai/codequest/internal/server/storage"
	"github.com/codequest-ai/codequest/internal/validation"
)

// AuthService orchestrates registration, login, logout, profile updates,
// and session validation over the user and session stores.
type AuthService struct {
	logger      *slog.Logger
	users       storage.UserStorage
	sessions    storage.SessionStorage
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

// NewAuthService creates a new AuthService.
// sessionTTL is the default session lifetime, rememberTTL the lifetime
// issued for "remember me" logins.
func NewAuthService(
	logger *slog.Logger,
	users storage.UserStorage,
	sessions storage.SessionStorage,
	sessionTTL, rememberTTL time.Duration,
) *AuthService {
	return &AuthService{
		logger:      logger,
		users:       users,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
	}
}

// NormalizeEmail trims and lowercases an email address. All email handling
// goes through this so uniqueness is case-insensitive end to end.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user account. Validation failures are returned as
// *ValidationError or ErrEmailTaken; nothing is mutated on failure.
func (s *AuthService) Register(ctx context.Context, fullName, email, password, confirmPassword string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = NormalizeEmail(email)

	if err := validation.ValidateFullName(fullName); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	if password != confirmPassword {
		return nil, &ValidationError{Reason: "passwords do not match"}
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email))

	return user, nil
}

// Login verifies credentials and issues a new session. A missing user and a
// wrong password both yield ErrInvalidCredentials; an inactive account
// yields ErrAccountDisabled. This is the only place a session is created.
func (s *AuthService) Login(ctx context.Context, email, password string, remember bool) (*models.Session, *models.User, error) {
	email = NormalizeEmail(email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := crypto.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	ttl := s.sessionTTL
	if remember {
		ttl = s.rememberTTL
	}

	session, err := s.issueSession(ctx, user.ID, ttl)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Not fatal for the login itself
		s.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}
	user.LastLogin = &now

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.Bool("remember", remember))

	return session, user, nil
}

// issueSession generates an unguessable token, computes the expiry, and
// persists the record.
func (s *AuthService) issueSession(ctx context.Context, userID string, ttl time.Duration) (*models.Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// generateToken returns a cryptographically random opaque token.
func generateToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}

// Logout revokes the session for the given token. Revoking an unknown or
// already-revoked token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessions.DeleteSessionByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	s.logger.InfoContext(ctx, "session revoked")
	return nil
}

// ValidateSession resolves a session token to its user. It returns
// ErrNotAuthenticated when the token is missing, unknown, expired, or the
// owning user is inactive or gone; callers must clear any client-held
// authentication context (cookies) on that result.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	session, err := s.sessions.GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	user, err := s.users.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Expiry is checked explicitly; expired rows may still be in storage.
	if !session.IsValid(user, time.Now()) {
		return nil, ErrNotAuthenticated
	}

	return user, nil
}

// GetProfile returns the user for the given ID.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the display name and, when both currentPassword and
// newPassword are supplied, the password. The current password must verify
// against the stored hash (ErrWrongPassword otherwise) and the new password
// must pass the strength policy. A successful password change revokes every
// session of the user. The updated-at timestamp is always refreshed.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, fullName, currentPassword, newPassword string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	if err := validation.ValidateFullName(fullName); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	passwordChanged := false
	if currentPassword != "" && newPassword != "" {
		if err := crypto.VerifyPassword(currentPassword, user.PasswordHash); err != nil {
			return nil, ErrWrongPassword
		}
		if err := validation.ValidatePassword(newPassword); err != nil {
			return nil, &ValidationError{Reason: err.Error()}
		}

		hash, err := crypto.HashPassword(newPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
		passwordChanged = true
	}

	user.FullName = fullName
	user.UpdatedAt = time.Now()

	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if passwordChanged {
		// A changed password invalidates every outstanding session; the
		// client has to log in again with the new one.
		n, err := s.sessions.DeleteUserSessions(ctx, user.ID)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to revoke sessions after password change",
				slog.Any("error", err))
		} else {
			s.logger.InfoContext(ctx, "sessions revoked after password change",
				slog.String("user_id", user.ID),
				slog.Int("count", n))
		}
	}

	s.logger.InfoContext(ctx, "profile updated", slog.String("user_id", user.ID))

	return user, nil
}

// ReapExpiredSessions removes expired session rows and returns how many
// were deleted. Intended to run periodically from the server main loop.
func (s *AuthService) ReapExpiredSessions(ctx context.Context) (int, error) {
	n, err := s.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return n, nil
}
