package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/infrastructure/ratelimit"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

// RateLimit limits requests per client IP under name. A nil limiter or a
// limiter error lets the request through so an unavailable Redis never
// blocks traffic.
func RateLimit(limiter ratelimit.RateLimiter, name string, policy ratelimit.Policy, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || !policy.Enabled() {
			c.Next()
			return
		}

		decision, err := limiter.Allow(c.Request.Context(), name+":"+c.ClientIP(), policy)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err, "limit", name)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			seconds := int(decision.RetryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			log.Warnw("rate limit exceeded", "limit", name, "client_ip", c.ClientIP())
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
