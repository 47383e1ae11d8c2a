// Package config loads server configuration from environment variables,
// with optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all server settings.
type Config struct {
	Addr       string // listen address
	SQLitePath string // path to the sqlite database file
	BoltPath   string // path to the bbolt battle-room database

	SessionTTL  time.Duration // default session lifetime
	RememberTTL time.Duration // session lifetime with "remember me"

	ExecInterpreter string        // interpreter for submitted code snippets
	ExecTimeout     time.Duration // hard limit per snippet execution

	AdminName     string // default admin seeded at startup
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:            getEnv("CODEQUEST_ADDR", ":8080"),
		SQLitePath:      getEnv("CODEQUEST_DB_PATH", "codequest.db"),
		BoltPath:        getEnv("CODEQUEST_BOLT_PATH", "codequest-rooms.db"),
		ExecInterpreter: getEnv("CODEQUEST_EXEC_INTERPRETER", "python3"),
		AdminName:       getEnv("CODEQUEST_ADMIN_NAME", "CodeQuest Admin"),
		AdminEmail:      getEnv("CODEQUEST_ADMIN_EMAIL", "admin@codequest.ai"),
		AdminPassword:   os.Getenv("CODEQUEST_ADMIN_PASSWORD"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("CODEQUEST_SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RememberTTL, err = getDuration("CODEQUEST_REMEMBER_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ExecTimeout, err = getDuration("CODEQUEST_EXEC_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
