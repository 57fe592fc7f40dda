// Package ratelimit provides rate limiting middleware for authentication endpoints.
package ratelimit

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/gethelpdesk/helpdesk/internal/pkg/log"
)

// Config holds the configuration for rate limiting middleware.
type Config struct {
	// MaxRequests per window, keyed by client IP.
	MaxRequests int
	// WindowDuration is the sliding window length.
	WindowDuration time.Duration
	// Next defines a function to skip this middleware when returned true.
	Next func(c *fiber.Ctx) bool
}

// LoginConfig returns the default limits for the agent login endpoint:
// 5 attempts per 15 minutes per IP.
func LoginConfig() Config {
	return Config{
		MaxRequests:    5,
		WindowDuration: 15 * time.Minute,
	}
}

// New creates a fiber limiter with the given config. When the limit is
// exceeded the client receives a 429 with a Retry-After hint.
func New(cfg Config) fiber.Handler {
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = 5
	}
	if cfg.WindowDuration <= 0 {
		cfg.WindowDuration = 15 * time.Minute
	}

	return limiter.New(limiter.Config{
		Max:        cfg.MaxRequests,
		Expiration: cfg.WindowDuration,
		Next:       cfg.Next,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			log.WarnWithContext(c.UserContext(), "rate limit exceeded: ip=%s path=%s", c.IP(), c.Path())
			c.Set("Retry-After", cfg.WindowDuration.String())
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    "RATE_LIMITED",
				"message": "Too many requests, please try again later",
			})
		},
	})
}
