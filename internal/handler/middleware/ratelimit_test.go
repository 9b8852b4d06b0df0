//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"sauna-booking/internal/handler/middleware"
	"sauna-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// countingLimiter allows the first n calls per key.
type countingLimiter struct {
	mu    sync.Mutex
	n     int
	seen  map[string]int
	err   error
	calls []string
}

func (l *countingLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, key)
	if l.err != nil {
		return false, l.err
	}
	l.seen[key]++
	return l.seen[key] <= l.n, nil
}

func newLimitedRouter(limiter middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reserve", middleware.RateLimit(limiter, "reserve"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects past the limit per client", func(t *testing.T) {
		limiter := &countingLimiter{n: 2, seen: map[string]int{}}
		r := newLimitedRouter(limiter)

		for range 2 {
			rec := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/reserve", nil, nil)
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		}
		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/reserve", nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")

		assert.Len(t, limiter.calls, 3)
		assert.Contains(t, limiter.calls[0], "reserve:")
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		limiter := &countingLimiter{seen: map[string]int{}, err: errors.New("redis: connection refused")}
		r := newLimitedRouter(limiter)

		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/reserve", nil, nil)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})
}
