package middleware

import (
	"jumpnjoy-ops/config"
	pkgLog "jumpnjoy-ops/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.PerMin),
	}
}
