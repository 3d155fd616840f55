package http

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// rateLimiter is a fixed-window per-client limiter. Exceeding the limit
// yields 429 with a Retry-After header so clients can surface concrete
// retry guidance.
type rateLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	counts  map[string]int
	resetAt time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:   limit,
		window:  window,
		counts:  make(map[string]int),
		resetAt: time.Now().Add(window),
	}
}

func (l *rateLimiter) allow(client string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.After(l.resetAt) {
		l.counts = make(map[string]int)
		l.resetAt = now.Add(l.window)
	}
	l.counts[client]++
	if l.counts[client] > l.limit {
		return false, time.Until(l.resetAt)
	}
	return true, 0
}

func (l *rateLimiter) middleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		client := r.Header.Get("Authorization")
		if client == "" {
			client = r.RemoteAddr
		}
		ok, retryIn := l.allow(client)
		if !ok {
			seconds := int(retryIn.Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			writeError(w, http.StatusTooManyRequests,
				"too many requests, retry after "+strconv.Itoa(seconds)+"s")
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
