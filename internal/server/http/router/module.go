package router

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/atelier/internal/config"
	"github.com/polkiloo/atelier/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newRateLimiter, Setup)

// newRateLimiter builds the public endpoint limiter and ties its sweeper to the app lifecycle.
func newRateLimiter(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.PublicRateLimit, cfg.PublicRateBurst, logger)
	lc.Append(fx.Hook{OnStart: limiter.Start, OnStop: limiter.Stop})
	return limiter
}
