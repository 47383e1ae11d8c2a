package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "codequest.db", cfg.SQLitePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.RememberTTL)
	assert.Equal(t, 5*time.Second, cfg.ExecTimeout)
	assert.Equal(t, "admin@codequest.ai", cfg.AdminEmail)
	assert.Empty(t, cfg.AdminPassword)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CODEQUEST_ADDR", ":9090")
	t.Setenv("CODEQUEST_SESSION_TTL", "2h")
	t.Setenv("CODEQUEST_EXEC_INTERPRETER", "python")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "python", cfg.ExecInterpreter)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("CODEQUEST_SESSION_TTL", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
