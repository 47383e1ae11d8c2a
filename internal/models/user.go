package models

import "time"

// User represents a registered account.
type User struct {
	ID           string     `json:"id"`        // user UUID
	FullName     string     `json:"full_name"` // display name
	Email        string     `json:"email"`     // unique, stored lowercased
	PasswordHash string     `json:"-"`         // bcrypt hash, never serialized
	IsActive     bool       `json:"is_active"` // login disabled when false
	IsVerified   bool       `json:"is_verified"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// PublicUser is the user view returned to clients. It never carries the
// credential hash or status flags.
type PublicUser struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Public returns the client-safe view of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
	}
}

// Session represents an issued login session. The token is the opaque
// bearer credential; the ID only identifies the record.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"` // opaque bearer token, never serialized
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired reports whether the session has passed its expiry at the given
// moment. Expired rows may still exist in storage; callers must check this
// explicitly instead of relying on deletion.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IsValid reports whether the session is currently usable: not expired and
// owned by an active user.
func (s *Session) IsValid(u *User, now time.Time) bool {
	return !s.IsExpired(now) && u != nil && u.IsActive
}
