package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"sauna-booking/internal/handler/httperr"
	"sauna-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.New("rate limit exceeded")

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit keys on the client IP. A limiter failure lets the request through
// so a Redis outage does not take bookings down with it.
func RateLimit(limiter RateLimiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Error("Rate limiter unavailable", "scope", scope, "error", err.Error())
			c.Next()
			return
		}
		if !allowed {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
