// Package api defines the JSON request and response shapes of the HTTP
// interface. Every response carries the `success` envelope.
package api

import "github.com/codequest-ai/codequest/internal/models"

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// LogoutRequest is the optional body of POST /api/auth/logout; the token
// may also arrive as a cookie or bearer header.
type LogoutRequest struct {
	SessionToken string `json:"session_token"`
}

// UpdateProfileRequest is the body of POST /api/auth/update-profile.
// CurrentPassword and NewPassword are optional; the password only changes
// when both are present.
type UpdateProfileRequest struct {
	FullName        string `json:"full_name"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuthResponse is the success shape of register, login, profile, and
// update-profile responses.
type AuthResponse struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message,omitempty"`
	User         *models.PublicUser `json:"user,omitempty"`
	SessionToken string             `json:"session_token,omitempty"`
}

// SessionCheckResponse is the shape of GET /api/auth/check-session; it is
// returned with status 200 in both the authenticated and anonymous case.
type SessionCheckResponse struct {
	Success       bool               `json:"success"`
	Authenticated bool               `json:"authenticated"`
	User          *models.PublicUser `json:"user,omitempty"`
}

// ErrorResponse is the failure shape shared by all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
