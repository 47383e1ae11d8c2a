package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/codequest-ai/codequest/internal/config"
	"github.com/codequest-ai/codequest/internal/crypto"
	"github.com/codequest-ai/codequest/internal/games"
	"github.com/codequest-ai/codequest/internal/models"
	"github.com/codequest-ai/codequest/internal/sandbox"
	"github.com/codequest-ai/codequest/internal/server"
	"github.com/codequest-ai/codequest/internal/server/handlers"
	"github.com/codequest-ai/codequest/internal/server/service"
	"github.com/codequest-ai/codequest/internal/server/storage"
	"github.com/codequest-ai/codequest/internal/server/storage/boltdb"
	"github.com/codequest-ai/codequest/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to open sqlite storage: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	rooms, err := boltdb.New(ctx, cfg.BoltPath)
	if err != nil {
		return fmt.Errorf("failed to open room storage: %w", err)
	}
	defer func() {
		_ = rooms.Close()
	}()

	if err := seedAdmin(ctx, logger, store, cfg); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	authSvc := service.NewAuthService(logger, store, store, cfg.SessionTTL, cfg.RememberTTL)
	runner := sandbox.NewRunner(cfg.ExecInterpreter, cfg.ExecTimeout)

	go reapSessions(ctx, logger, authSvc)

	srv := server.New(
		cfg.Addr,
		logger,
		authSvc,
		handlers.NewAuthHandler(logger, authSvc),
		handlers.NewGamesHandler(logger, games.NewCatalog(), store, store, rooms),
		handlers.NewExecHandler(logger, runner),
		handlers.NewHealthHandler(logger, Version),
	)

	return srv.Run(ctx)
}

// reapSessions periodically removes expired session rows until ctx is
// canceled. Expired sessions are already rejected at validation time; this
// just keeps the table from growing.
func reapSessions(ctx context.Context, logger *slog.Logger, auth *service.AuthService) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := auth.ReapExpiredSessions(ctx)
			if err != nil {
				logger.Warn("session cleanup failed", slog.Any("error", err))
				continue
			}
			if n > 0 {
				logger.Info("expired sessions removed", slog.Int("count", n))
			}
		}
	}
}

// seedAdmin creates the default admin account unless it already exists or
// no admin password is configured.
func seedAdmin(ctx context.Context, logger *slog.Logger, users storage.UserStorage, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		logger.Info("admin password not configured, skipping admin seed")
		return nil
	}

	hash, err := crypto.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &models.User{
		ID:           uuid.New().String(),
		FullName:     cfg.AdminName,
		Email:        service.NormalizeEmail(cfg.AdminEmail),
		PasswordHash: hash,
		IsActive:     true,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := users.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return nil
		}
		return err
	}

	logger.Info("default admin created", slog.String("email", admin.Email))
	return nil
}

func printVersion() {
	fmt.Printf("CodeQuest Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
