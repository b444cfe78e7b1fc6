package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServer answers the ping and auth routes. The check route reports
// "waiting" for the first waits polls and then the final status.
func authServer(t *testing.T, waits int32, final string, checks *atomic.Int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ping":
			_, _ = w.Write([]byte("JoplinClipperServer"))
		case "/auth":
			assert.Equal(t, http.MethodPost, r.Method)
			writeJSON(w, http.StatusOK, `{"auth_token":"init-token"}`)
		case "/auth/check":
			assert.Equal(t, "init-token", r.URL.Query().Get("auth_token"))
			if checks.Add(1) <= waits {
				writeJSON(w, http.StatusOK, `{"status":"waiting"}`)
				return
			}
			if final == AuthStatusAccepted {
				writeJSON(w, http.StatusOK, `{"status":"accepted","token":"api-token"}`)
				return
			}
			writeJSON(w, http.StatusOK, `{"status":"`+final+`"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestCheckConnection_Reachable(t *testing.T) {
	t.Parallel()

	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	assert.True(t, newTestAPIClient(t, server).CheckConnection(context.Background()))
	assert.Equal(t, "/ping", requestedPath)
}

func TestCheckConnection_ErrorStatusIsReachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	assert.True(t, newTestAPIClient(t, server).CheckConnection(context.Background()))
}

func TestCheckConnection_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	api := newTestAPIClient(t, server)
	server.Close()

	assert.False(t, api.CheckConnection(context.Background()))
}

func TestRequestToken_PollsUntilAnswered(t *testing.T) {
	t.Parallel()

	var checks atomic.Int32
	server := authServer(t, 2, AuthStatusAccepted, &checks)
	defer server.Close()

	api := newTestAPIClient(t, server, WithAuthPollInterval(10*time.Millisecond))

	result, err := api.RequestToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, AuthStatusAccepted, result.Status)
	assert.Equal(t, "api-token", result.Token)
	assert.Equal(t, int32(3), checks.Load())
}

func TestAuthenticate_Accepted(t *testing.T) {
	t.Parallel()

	var checks atomic.Int32
	server := authServer(t, 1, AuthStatusAccepted, &checks)
	defer server.Close()

	api := newTestAPIClient(t, server, WithAuthPollInterval(10*time.Millisecond))

	token, err := api.Authenticate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "api-token", token)
}

func TestAuthenticate_Denied(t *testing.T) {
	t.Parallel()

	var checks atomic.Int32
	server := authServer(t, 1, AuthStatusRejected, &checks)
	defer server.Close()

	api := newTestAPIClient(t, server, WithAuthPollInterval(10*time.Millisecond))

	token, err := api.Authenticate(context.Background())

	require.ErrorIs(t, err, ErrAuthorizationDenied)
	assert.Contains(t, err.Error(), AuthStatusRejected)
	assert.Empty(t, token)
}

func TestAuthenticate_Unavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	api := newTestAPIClient(t, server)
	server.Close()

	_, err := api.Authenticate(context.Background())

	require.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestRequestToken_Timeout(t *testing.T) {
	t.Parallel()

	var checks atomic.Int32
	server := authServer(t, 1<<30, AuthStatusAccepted, &checks)
	defer server.Close()

	api := newTestAPIClient(t, server,
		WithAuthPollInterval(10*time.Millisecond),
		WithAuthTimeout(100*time.Millisecond),
	)

	_, err := api.RequestToken(context.Background())

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, checks.Load())
}

func TestRequestToken_ContextCancelled(t *testing.T) {
	t.Parallel()

	var checks atomic.Int32
	server := authServer(t, 1<<30, AuthStatusAccepted, &checks)
	defer server.Close()

	api := newTestAPIClient(t, server, WithAuthPollInterval(10*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := api.RequestToken(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRequestToken_InitWithoutToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer server.Close()

	_, err := newTestAPIClient(t, server).RequestToken(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth_token")
}

func TestAuthenticate_CheckServerErrorIsNotDenial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"internal server error", http.StatusInternalServerError, `{"error":"Internal Server Error"}`, "GET /auth/check failed with status code: 500"},
		{"missing status", http.StatusOK, `{}`, "auth check response has no status"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/ping":
					w.WriteHeader(http.StatusOK)
				case "/auth":
					writeJSON(w, http.StatusOK, `{"auth_token":"init-token"}`)
				default:
					writeJSON(w, tt.status, tt.body)
				}
			}))
			defer server.Close()

			api := newTestAPIClient(t, server, WithAuthPollInterval(10*time.Millisecond))

			token, err := api.Authenticate(context.Background())

			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrAuthorizationDenied))
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, token)
		})
	}
}

func TestAuthenticate_EndedContext(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAPIClient(t, server).Authenticate(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrServiceUnavailable))
	assert.Equal(t, int32(0), calls.Load())
}
