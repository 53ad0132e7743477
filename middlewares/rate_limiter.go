package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimiter counts requests per client IP and rejects clients that
// exceed the limit within a window. Counters reset wholesale every
// window rather than sliding.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]int
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]int),
		limit:    limit,
		window:   window,
	}
	go rl.reset()
	return rl
}

func (rl *rateLimiter) reset() {
	for {
		time.Sleep(rl.window)
		rl.mu.Lock()
		rl.visitors = make(map[string]int)
		rl.mu.Unlock()
	}
}

func (rl *rateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorIP := c.ClientIP()

		// the lock covers only the counter; handlers run unlocked so
		// one slow upload cannot serialize other requests
		rl.mu.Lock()
		rl.visitors[visitorIP]++
		count := rl.visitors[visitorIP]
		rl.mu.Unlock()

		if count > rl.limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}
