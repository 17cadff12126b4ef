package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter is a fixed-window in-memory rate limiter keyed by client IP.
// State is per-process; a multi-instance deployment needs a shared store.
type RateLimiter struct {
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	mu       sync.Mutex
}

type visitor struct {
	windowEnd time.Time
	count     int
}

// NewRateLimiter creates a rate limiter allowing limit requests per window
// per client and starts its background cleanup loop
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}
	go rl.evictExpired()
	return rl
}

// Middleware rejects requests over the limit with 429 and a Retry-After hint
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, retryAfter := rl.take(clientIP(r))
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// take records a request for the client and reports whether it is allowed.
// When denied, retryAfter is the time left in the current window.
func (rl *RateLimiter) take(clientID string) (allowed bool, retryAfter time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()

	v, ok := rl.visitors[clientID]
	if !ok || now.After(v.windowEnd) {
		rl.visitors[clientID] = &visitor{count: 1, windowEnd: now.Add(rl.window)}
		return true, 0
	}

	if v.count < rl.limit {
		v.count++
		return true, 0
	}

	return false, v.windowEnd.Sub(now)
}

// evictExpired drops stale visitor entries once per window
func (rl *RateLimiter) evictExpired() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for clientID, v := range rl.visitors {
			if now.After(v.windowEnd) {
				delete(rl.visitors, clientID)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP extracts the client identifier from the request, preferring proxy
// headers over the socket address
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
