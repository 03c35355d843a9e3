package observability

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// requestLogSkip lists health check paths that are not worth a log line per hit
var requestLogSkip = map[string]bool{
	"/health": true,
}

// GetRealClientIP extracts the client IP, preferring the CloudFront viewer header.
func GetRealClientIP(c *gin.Context) string {
	if viewerAddr := c.GetHeader("CloudFront-Viewer-Address"); viewerAddr != "" {
		if host, _, err := net.SplitHostPort(viewerAddr); err == nil {
			return host
		}
		// IPv6 viewers arrive unbracketed, e.g. "2001:db8::1:443"
		if idx := strings.LastIndex(viewerAddr, ":"); idx > 0 {
			return viewerAddr[:idx]
		}
		return viewerAddr
	}
	return c.ClientIP()
}

// Middleware tags the request context with a request id and request
// metadata, recovers panics as a sanitized 500, and logs one Metrics entry
// per request.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = "req-" + uuid.NewString()
			c.Request.Header.Set(RequestIDHeader, requestID)
		}
		c.Header(RequestIDHeader, requestID)

		ctx := WithFields(c.Request.Context(),
			Field{"request_id", requestID},
			Field{"method", c.Request.Method},
			Field{"path", c.Request.URL.Path},
			Field{"client_ip", GetRealClientIP(c)},
			Field{"user_agent", c.Request.UserAgent()},
		)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("panic: %v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "An internal error occurred. Please try again later.",
					"code":  "INTERNAL_ERROR",
				})
			}
			if requestLogSkip[c.Request.URL.Path] {
				return
			}

			l.Metrics(c.Request.Context(),
				MetricField{"route", c.FullPath()},
				MetricField{"status", c.Writer.Status()},
				MetricField{"latency_ms", time.Since(start).Milliseconds()},
				MetricField{"response_bytes", c.Writer.Size()},
			)
		}()

		c.Next()
	}
}
