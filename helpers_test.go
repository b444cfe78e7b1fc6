package client

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// testSettings points the default settings at a test server.
func testSettings(t *testing.T, serverURL string) Settings {
	t.Helper()

	u, err := url.Parse(serverURL)
	require.NoError(t, err)

	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	settings := DefaultSettings()
	settings.Host = u.Hostname()
	settings.Port = port

	return settings
}

func newTestAPIClient(t *testing.T, server *httptest.Server, opts ...Option) *APIClient {
	t.Helper()

	api, err := NewAPIClient(testSettings(t, server.URL), opts...)
	require.NoError(t, err)

	return api
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
