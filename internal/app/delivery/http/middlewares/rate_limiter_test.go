package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCredentialRateLimiter(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	fire := func(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		request.RemoteAddr = remoteAddr
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	t.Run("Allows Up To The Burst Then Blocks", func(t *testing.T) {
		limiter := NewCredentialRateLimiter(2, time.Minute, time.Minute)
		handler := limiter.Limit(okHandler)

		assert.Equal(t, http.StatusOK, fire(handler, "10.0.0.1:1000").Code)
		assert.Equal(t, http.StatusOK, fire(handler, "10.0.0.1:1001").Code)
		assert.Equal(t, http.StatusTooManyRequests, fire(handler, "10.0.0.1:1002").Code)
	})

	t.Run("Blocked IP Stays Blocked", func(t *testing.T) {
		limiter := NewCredentialRateLimiter(1, time.Minute, time.Minute)
		handler := limiter.Limit(okHandler)

		assert.Equal(t, http.StatusOK, fire(handler, "10.0.0.2:1000").Code)
		assert.Equal(t, http.StatusTooManyRequests, fire(handler, "10.0.0.2:1000").Code)
		assert.Equal(t, http.StatusTooManyRequests, fire(handler, "10.0.0.2:1000").Code)
	})

	t.Run("Each IP Gets Its Own Budget", func(t *testing.T) {
		limiter := NewCredentialRateLimiter(1, time.Minute, time.Minute)
		handler := limiter.Limit(okHandler)

		assert.Equal(t, http.StatusOK, fire(handler, "10.0.0.3:1000").Code)
		assert.Equal(t, http.StatusTooManyRequests, fire(handler, "10.0.0.3:1000").Code)
		assert.Equal(t, http.StatusOK, fire(handler, "10.0.0.4:1000").Code)
	})
}
