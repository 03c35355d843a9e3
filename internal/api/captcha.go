package api

import (
	"boatshow-server/internal/apierrors"
	authHandler "boatshow-server/internal/auth/handler"
	"boatshow-server/internal/observability"
	"context"

	"github.com/gin-gonic/gin"
)

const captchaHeader = "X-Turnstile-Token"

// CaptchaVerifier checks a bot-protection token issued to the browser
type CaptchaVerifier interface {
	IsEnabled() bool
	Verify(ctx context.Context, token, remoteIP string) error
}

// requireCaptcha verifies the public form token. Signed-in admins skip it.
// Must run after HandlePublicMiddleware.
func requireCaptcha(verifier CaptchaVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil || !verifier.IsEnabled() {
			c.Next()
			return
		}
		if _, byAdmin := authHandler.PrincipalFromContext(c); byAdmin {
			c.Next()
			return
		}

		err := verifier.Verify(c.Request.Context(), c.GetHeader(captchaHeader), observability.GetRealClientIP(c))
		if err != nil {
			apierrors.AbortWithError(c, err)
			return
		}
		c.Next()
	}
}
