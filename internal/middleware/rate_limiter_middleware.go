package middleware

import (
	"strings"
	"time"

	"github.com/fadilmartias/linkedin-autoapply/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// DefaultRequestsPerMinute applies when the dashboard config leaves the limit unset.
const DefaultRequestsPerMinute = 60

// RateLimiter throttles dashboard API calls per client IP. Health endpoints are
// never counted.
func RateLimiter(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		perMinute = DefaultRequestsPerMinute
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return !strings.HasPrefix(c.Path(), "/api")
		},
		LimitReached: func(c *fiber.Ctx) error {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusTooManyRequests,
				Message: "Too many dashboard requests, retry in a minute",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
