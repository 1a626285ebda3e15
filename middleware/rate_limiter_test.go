package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(maxRequests int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimiter(maxRequests, window))
	router.GET("/a", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/b", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func hit(router *gin.Engine, path string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func resetWindows() {
	rlMu.Lock()
	rlWindows = make(map[string]*rlWindow)
	rlMu.Unlock()
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	resetWindows()
	router := newLimitedRouter(2, time.Minute)

	assert.Equal(t, http.StatusOK, hit(router, "/a"))
	assert.Equal(t, http.StatusOK, hit(router, "/a"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "/a"))

	// Endpoints are limited independently.
	assert.Equal(t, http.StatusOK, hit(router, "/b"))
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	resetWindows()
	router := newLimitedRouter(1, 20*time.Millisecond)

	assert.Equal(t, http.StatusOK, hit(router, "/a"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "/a"))

	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, http.StatusOK, hit(router, "/a"))
}

func TestRateLimiterSweepsExpiredWindows(t *testing.T) {
	resetWindows()
	router := newLimitedRouter(10, 20*time.Millisecond)

	require.Equal(t, http.StatusOK, hit(router, "/a"))

	rlMu.Lock()
	before := len(rlWindows)
	rlMu.Unlock()
	require.Equal(t, 1, before)

	time.Sleep(30 * time.Millisecond)

	// The next request, for a different endpoint, sweeps the stale key.
	require.Equal(t, http.StatusOK, hit(router, "/b"))

	rlMu.Lock()
	defer rlMu.Unlock()
	assert.Len(t, rlWindows, 1)
	for key := range rlWindows {
		assert.Contains(t, key, "/b")
	}
}
