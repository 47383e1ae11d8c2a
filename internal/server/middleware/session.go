package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/codequest-ai/codequest/internal/server/handlers"
	"github.com/codequest-ai/codequest/internal/server/service"
	"github.com/codequest-ai/codequest/pkg/api"
)

// RequireSession guards protected routes. It resolves the session token to
// its user and stores the user in the request context; on failure it
// clears the session cookie and answers 401 without calling the next
// handler.
func RequireSession(logger *slog.Logger, auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.ValidateSession(r.Context(), handlers.SessionToken(r))
			if err != nil {
				logger.WarnContext(r.Context(), "session validation failed",
					slog.String("path", r.URL.Path),
					slog.Any("error", err))

				handlers.ClearSessionCookie(w)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{
					Success: false,
					Message: "Please log in",
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), user)))
		})
	}
}

// OptionalSession resolves the session token when one is present but never
// rejects the request. Used by endpoints that are open to anonymous
// players yet record results for logged-in ones.
func OptionalSession(logger *slog.Logger, auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.ValidateSession(r.Context(), handlers.SessionToken(r))
			if err == nil {
				r = r.WithContext(handlers.WithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}
