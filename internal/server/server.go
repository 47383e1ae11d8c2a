// Package server wires handlers, middleware, and the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/codequest-ai/codequest/internal/server/handlers"
	"github.com/codequest-ai/codequest/internal/server/middleware"
	"github.com/codequest-ai/codequest/internal/server/service"
)

// Server is the HTTP front of the application.
type Server struct {
	logger *slog.Logger
	auth   *service.AuthService

	authHandler   *handlers.AuthHandler
	gamesHandler  *handlers.GamesHandler
	execHandler   *handlers.ExecHandler
	healthHandler *handlers.HealthHandler

	httpServer *http.Server
}

// New creates a Server listening on addr.
func New(
	addr string,
	logger *slog.Logger,
	auth *service.AuthService,
	authHandler *handlers.AuthHandler,
	gamesHandler *handlers.GamesHandler,
	execHandler *handlers.ExecHandler,
	healthHandler *handlers.HealthHandler,
) *Server {
	s := &Server{
		logger:        logger,
		auth:          auth,
		authHandler:   authHandler,
		gamesHandler:  gamesHandler,
		execHandler:   execHandler,
		healthHandler: healthHandler,
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return s
}

// routes builds the router with the middleware chain.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	requireSession := middleware.RequireSession(s.logger, s.auth)
	optionalSession := middleware.OptionalSession(s.logger, s.auth)

	mux.HandleFunc("GET /api/health", s.healthHandler.Health)

	// Auth (public)
	mux.HandleFunc("POST /api/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", s.authHandler.Logout)
	mux.HandleFunc("GET /api/auth/check-session", s.authHandler.CheckSession)

	// Auth (protected)
	mux.Handle("GET /api/auth/profile", requireSession(http.HandlerFunc(s.authHandler.Profile)))
	mux.Handle("POST /api/auth/update-profile", requireSession(http.HandlerFunc(s.authHandler.UpdateProfile)))

	// Games (public; submissions record results for logged-in players)
	mux.HandleFunc("GET /api/games/quiz/questions", s.gamesHandler.QuizQuestions)
	mux.Handle("POST /api/games/quiz/submit", optionalSession(http.HandlerFunc(s.gamesHandler.QuizSubmit)))
	mux.HandleFunc("GET /api/games/speed-coding/challenges", s.gamesHandler.SpeedChallenges)
	mux.Handle("POST /api/games/speed-coding/submit", optionalSession(http.HandlerFunc(s.gamesHandler.SpeedSubmit)))
	mux.HandleFunc("GET /api/games/debugging/challenges", s.gamesHandler.DebugChallenges)
	mux.Handle("POST /api/games/debugging/submit", optionalSession(http.HandlerFunc(s.gamesHandler.DebugSubmit)))
	mux.HandleFunc("GET /api/games/leaderboard", s.gamesHandler.Leaderboard)

	// Games (protected)
	mux.Handle("POST /api/games/story/save", requireSession(http.HandlerFunc(s.gamesHandler.StorySave)))
	mux.Handle("GET /api/games/story/list", requireSession(http.HandlerFunc(s.gamesHandler.StoryList)))
	mux.Handle("POST /api/games/battle/create", requireSession(http.HandlerFunc(s.gamesHandler.BattleCreate)))
	mux.Handle("POST /api/games/battle/join", requireSession(http.HandlerFunc(s.gamesHandler.BattleJoin)))

	// Code execution
	mux.HandleFunc("POST /api/execute", s.execHandler.Execute)

	var handler http.Handler = mux
	handler = middleware.Logging(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// Run starts the listener and blocks until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("shutting down server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	return nil
}

// Handler exposes the configured router for testing purposes.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
