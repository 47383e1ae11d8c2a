package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codequest-ai/codequest/internal/server/service"
	"github.com/codequest-ai/codequest/internal/server/storage"
	"github.com/codequest-ai/codequest/pkg/api"
)

// AuthHandler serves the /api/auth endpoints.
type AuthHandler struct {
	logger *slog.Logger
	auth   *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(logger *slog.Logger, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		auth:   auth,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.auth.Register(ctx, req.FullName, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			sendError(h.logger, w, ve.Reason, http.StatusBadRequest)
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			sendError(h.logger, w, "This email is already in use", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
		sendError(h.logger, w, "Something went wrong, please try again", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.AuthResponse{
		Success: true,
		Message: "Registration successful! You can log in now.",
		User:    user.Public(),
	}, http.StatusCreated)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		sendError(h.logger, w, "Please fill in all fields", http.StatusBadRequest)
		return
	}

	session, user, err := h.auth.Login(ctx, req.Email, req.Password, req.Remember)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			sendError(h.logger, w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		case errors.Is(err, service.ErrAccountDisabled):
			sendError(h.logger, w, service.ErrAccountDisabled.Error(), http.StatusUnauthorized)
		default:
			h.logger.ErrorContext(ctx, "login failed", slog.Any("error", err))
			sendError(h.logger, w, "Something went wrong, please try again", http.StatusInternalServerError)
		}
		return
	}

	SetSessionCookie(w, session.Token, session.ExpiresAt)

	sendJSON(h.logger, w, api.AuthResponse{
		Success:      true,
		Message:      "Login successful!",
		User:         user.Public(),
		SessionToken: session.Token,
	}, http.StatusOK)
}

// Logout handles POST /api/auth/logout. Idempotent: always answers 200.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := SessionToken(r)
	if token == "" {
		// Token may also arrive in the body
		var req api.LogoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			token = req.SessionToken
		}
	}

	if err := h.auth.Logout(ctx, token); err != nil {
		// Still clear the client context; the row can be reaped later
		h.logger.ErrorContext(ctx, "failed to revoke session", slog.Any("error", err))
	}

	ClearSessionCookie(w)

	sendJSON(h.logger, w, api.AuthResponse{
		Success: true,
		Message: "Logged out successfully",
	}, http.StatusOK)
}

// CheckSession handles GET /api/auth/check-session. Both outcomes answer
// 200; a failed check clears the session cookie.
func (h *AuthHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.auth.ValidateSession(ctx, SessionToken(r))
	if err != nil {
		if !errors.Is(err, service.ErrNotAuthenticated) {
			h.logger.ErrorContext(ctx, "session check failed", slog.Any("error", err))
		}
		ClearSessionCookie(w)
		sendJSON(h.logger, w, api.SessionCheckResponse{
			Success:       false,
			Authenticated: false,
		}, http.StatusOK)
		return
	}

	sendJSON(h.logger, w, api.SessionCheckResponse{
		Success:       true,
		Authenticated: true,
		User:          user.Public(),
	}, http.StatusOK)
}

// Profile handles GET /api/auth/profile. The session middleware has
// already resolved the user.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUser(r.Context())
	if !ok {
		sendError(h.logger, w, "Please log in", http.StatusUnauthorized)
		return
	}

	sendJSON(h.logger, w, api.AuthResponse{
		Success: true,
		User:    user.Public(),
	}, http.StatusOK)
}

// UpdateProfile handles POST /api/auth/update-profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		sendError(h.logger, w, "Please log in", http.StatusUnauthorized)
		return
	}

	var req api.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode update-profile request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.auth.UpdateProfile(ctx, user.ID, req.FullName, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			sendError(h.logger, w, service.ErrWrongPassword.Error(), http.StatusUnauthorized)
		case errors.Is(err, storage.ErrUserNotFound):
			sendError(h.logger, w, "User not found", http.StatusNotFound)
		default:
			if ve, ok := service.AsValidation(err); ok {
				sendError(h.logger, w, ve.Reason, http.StatusBadRequest)
				return
			}
			h.logger.ErrorContext(ctx, "failed to update profile", slog.Any("error", err))
			sendError(h.logger, w, "Something went wrong, please try again", http.StatusInternalServerError)
		}
		return
	}

	sendJSON(h.logger, w, api.AuthResponse{
		Success: true,
		Message: "Profile updated successfully!",
		User:    updated.Public(),
	}, http.StatusOK)
}
