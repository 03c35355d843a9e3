package ratelimit

import (
	"boatshow-server/internal/apierrors"
	"boatshow-server/internal/observability"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP. Each scope keeps its own window,
// so filling in the registration form never blocks promo code checks.
func (s *Service) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limit <= 0 {
			c.Next()
			return
		}

		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "rate_limit_scope", Value: scope},
		)
		result, err := s.CheckRateLimit(ctx, scope+":"+observability.GetRealClientIP(c))
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			apierrors.AbortWithError(c, err)
			return
		}

		writeRateLimitHeaders(c, result)
		if result.Allowed {
			c.Next()
			return
		}

		// round up so clients never retry inside the window
		retryAfter := (time.Duration(result.RetryAfterMs)*time.Millisecond + time.Second - 1) / time.Second
		c.Header("Retry-After", strconv.FormatInt(int64(retryAfter), 10))
		s.logger.Warn(ctx, "rate limit exceeded")
		apierrors.AbortWithError(c, apierrors.TooManyRequests("Too many requests. Please try again later."))
	}
}

func writeRateLimitHeaders(c *gin.Context, result RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}
