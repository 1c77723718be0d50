package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthClient_CheckHealth(t *testing.T) {
	t.Run("Healthy Service Returns Payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.Write([]byte(`{"status": "healthy", "service": "triage-service"}`))
		}))
		defer server.Close()

		client := &healthClient{HTTPClient: server.Client(), Log: zap.NewNop()}

		result, err := client.CheckHealth(context.Background(), server.URL)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "healthy", result.Status)
		assert.Equal(t, "triage-service", result.Service)
	})

	t.Run("Non 200 Returns Nil Without Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := &healthClient{HTTPClient: server.Client(), Log: zap.NewNop()}

		result, err := client.CheckHealth(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Nil(t, result, "a reachable but failing service is unhealthy, not unreachable")
	})

	t.Run("Unreachable Service Returns Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := &healthClient{HTTPClient: &http.Client{}, Log: zap.NewNop()}

		result, err := client.CheckHealth(context.Background(), server.URL)

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Garbled Body Returns Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>oops</html>`))
		}))
		defer server.Close()

		client := &healthClient{HTTPClient: server.Client(), Log: zap.NewNop()}

		result, err := client.CheckHealth(context.Background(), server.URL)

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
