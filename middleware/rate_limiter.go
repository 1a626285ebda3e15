package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// Process-local fixed-window counters. The whole application is a single
// process with volatile state, so the limiter lives in memory too.
var (
	rlMu      sync.Mutex
	rlWindows = make(map[string]*rlWindow)
)

type rlWindow struct {
	count   int
	resetAt time.Time
}

func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		endpoint := c.FullPath() // /api/v1/cart, /api/v1/cart/items, etc.
		method := c.Request.Method

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + ip + ":" + method + ":" + endpoint

		now := time.Now()

		rlMu.Lock()
		// Expired windows are swept opportunistically so keys for callers
		// never seen again do not accumulate.
		for k, win := range rlWindows {
			if now.After(win.resetAt) {
				delete(rlWindows, k)
			}
		}
		w, ok := rlWindows[key]
		if !ok {
			w = &rlWindow{resetAt: now.Add(window)}
			rlWindows[key] = w
		}
		w.count++
		count := w.count
		resetAt := w.resetAt
		rlMu.Unlock()

		// Calculate remaining requests (clamped at 0)
		remaining := maxRequests - count
		if remaining < 0 {
			remaining = 0
		}

		// Reset in seconds (clamped at 0)
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Store in context for controllers
		c.Set("rateLimiter", rate)

		// If limit exceeded → block request
		if count > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
