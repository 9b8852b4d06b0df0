package bootstrap

import (
	"context"
	"log/slog"

	"sauna-booking/internal/handler/middleware"
	"sauna-booking/internal/infra/ratelimit"
	"sauna-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRateLimiter,
	),
)

// NewRateLimiter shares counters through Redis when RATE_LIMIT_REDIS_URL is
// set and falls back to a per-process limiter otherwise.
func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (middleware.RateLimiter, error) {
	rl := cfg.RateLimit
	if rl.RedisURL == "" {
		limiter := ratelimit.NewMemoryLimiter(rl.Requests, rl.Window)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return limiter.Close()
			},
		})
		logger.Info("Rate limiter initialized", "backend", "memory", "requests", rl.Requests, "window", rl.Window)
		return limiter, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	client, err := ratelimit.NewRedisClient(ctx, rl.RedisURL)
	if err != nil {
		return nil, err
	}

	limiter := ratelimit.NewRedisLimiter(client, rl.Requests, rl.Window)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return limiter.Close()
		},
	})
	logger.Info("Rate limiter initialized", "backend", "redis", "requests", rl.Requests, "window", rl.Window)
	return limiter, nil
}
