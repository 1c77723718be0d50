package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// CredentialRateLimiter slows down credential guessing on the auth
// endpoints. An IP that exhausts its burst is blocked outright for a
// cool-down window instead of being retried against the limiter.
type CredentialRateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
}

func NewCredentialRateLimiter(requests int, per, blockTime time.Duration) *CredentialRateLimiter {
	return &CredentialRateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
	}
}

// CredentialRateLimit builds a limiter from the auth knobs in the config.
// Each call returns an independent limiter, so the register and login
// routes share one only when they share the returned middleware.
func (m *Middlewares) CredentialRateLimit() func(next http.Handler) http.Handler {
	limiter := NewCredentialRateLimiter(
		m.InternalConfig.App.AuthMaxAttempts,
		time.Duration(m.InternalConfig.App.AuthAttemptWindowInSeconds)*time.Second,
		time.Duration(m.InternalConfig.App.AuthBlockTimeInMinutes)*time.Minute,
	)
	return limiter.Limit
}

func (l *CredentialRateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		l.mu.Lock()

		if blockedUntil, found := l.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				l.mu.Unlock()
				http.Error(w, "Too many attempts, you are temporarily blocked.", http.StatusTooManyRequests)
				return
			}
			delete(l.blocked, ip)
		}

		limiter, exists := l.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(l.per), l.requests)
			l.limiters[ip] = limiter
		}

		l.mu.Unlock()

		if !limiter.Allow() {
			l.mu.Lock()
			l.blocked[ip] = time.Now().Add(l.blockTime)
			l.mu.Unlock()

			http.Error(w, "Too many attempts, you are temporarily blocked.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
