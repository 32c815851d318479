//go:build unit

package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"qrkeep/internal/identity"
	"qrkeep/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProviderStub(t *testing.T, handler http.HandlerFunc) *identity.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := identity.NewClient(config.IdentityConfig{
		Endpoint: srv.URL,
		Timeout:  2 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RejectsEmptyEndpoint(t *testing.T) {
	_, err := identity.NewClient(config.IdentityConfig{Endpoint: ""})
	assert.Error(t, err)
}

func TestClient_CurrentUser(t *testing.T) {
	t.Run("returns the account bound to the session", func(t *testing.T) {
		client := newProviderStub(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/account", r.URL.Path)
			assert.Equal(t, "sess-123", r.Header.Get("X-Session-Token"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u1","name":"Alice","email":"alice@a.example"}`))
		})

		user, err := client.CurrentUser(context.Background(), "sess-123")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("fails on provider error status", func(t *testing.T) {
		client := newProviderStub(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.CurrentUser(context.Background(), "expired")
		assert.Error(t, err)
	})

	t.Run("fails when the provider returns no user id", func(t *testing.T) {
		client := newProviderStub(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := client.CurrentUser(context.Background(), "sess-123")
		assert.Error(t, err)
	})
}

func TestClient_DeleteSession(t *testing.T) {
	var called bool
	client := newProviderStub(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/account/sessions/current", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteSession(context.Background(), "sess-123"))
	assert.True(t, called)
}

func TestClient_ResolveUser(t *testing.T) {
	client := newProviderStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u9"}`))
	})

	id, err := client.ResolveUser(context.Background(), "sess-9")
	require.NoError(t, err)
	assert.Equal(t, "u9", id)
}
