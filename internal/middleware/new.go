package middleware

import (
	"abe-voice/pkg/log"
)

// Config configures the webhook protections.
type Config struct {
	// AllowedIPs holds exact addresses or CIDR ranges. Empty allows everyone.
	AllowedIPs []string
	// RateLimitPerMin is the per client IP budget. Zero or less disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l          log.Logger
	allowedIPs []string
	limiter    *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:          l,
		allowedIPs: cfg.AllowedIPs,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
