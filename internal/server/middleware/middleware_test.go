package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codequest-ai/codequest/internal/server/handlers"
	"github.com/codequest-ai/codequest/internal/server/service"
	"github.com/codequest-ai/codequest/internal/server/storage/sqlite"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupAuth(t *testing.T) (*service.AuthService, string, func()) {
	t.Helper()

	ctx := context.Background()
	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)

	auth := service.NewAuthService(testLogger(), store, store, 24*time.Hour, 720*time.Hour)

	_, err = auth.Register(ctx, "Middleware Tester", "mw@example.com", "secret123", "secret123")
	require.NoError(t, err)
	session, _, err := auth.Login(ctx, "mw@example.com", "secret123", false)
	require.NoError(t, err)

	cleanup := func() {
		_ = store.Close()
	}

	return auth, session.Token, cleanup
}

func TestRequireSession(t *testing.T) {
	auth, token, cleanup := setupAuth(t)
	defer cleanup()

	var gotUserEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := handlers.GetUser(r.Context())
		require.True(t, ok)
		gotUserEmail = user.Email
		w.WriteHeader(http.StatusNoContent)
	})

	guarded := RequireSession(testLogger(), auth)(next)

	t.Run("valid token passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "mw@example.com", gotUserEmail)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please log in")
	})

	t.Run("bad token rejected and cookie cleared", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: handlers.SessionCookieName, Value: "never-issued"})
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, handlers.SessionCookieName, cookies[0].Name)
		assert.Negative(t, cookies[0].MaxAge)
	})
}

func TestOptionalSession(t *testing.T) {
	auth, token, cleanup := setupAuth(t)
	defer cleanup()

	var sawUser bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawUser = handlers.GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	optional := OptionalSession(testLogger(), auth)(next)

	t.Run("anonymous passes through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		optional.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/open", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, sawUser)
	})

	t.Run("bad token still passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/open", nil)
		req.Header.Set("Authorization", "Bearer never-issued")
		rec := httptest.NewRecorder()
		optional.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, sawUser)
	})

	t.Run("valid token attaches user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/open", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		optional.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, sawUser)
	})
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	rec := httptest.NewRecorder()
	Logging(logger)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())

	out := buf.String()
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "path=/teapot")
	assert.Contains(t, out, "level=WARN")
}

func TestLogging_DefaultStatusIsOK(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	})

	rec := httptest.NewRecorder()
	Logging(logger)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "level=INFO")
}

func TestRecovery(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recovery(testLogger())(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
