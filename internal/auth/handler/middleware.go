package handler

import (
	"boatshow-server/internal/access"
	"boatshow-server/internal/apierrors"
	"boatshow-server/internal/auth/processor"
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	adminIDKey   = "Admin-ID"
	principalKey = "Admin-Principal"
)

// HandlePublicMiddleware admits requests bearing the anonymous key or a valid
// admin token. A valid admin token also populates the principal.
func (h *Handler) HandlePublicMiddleware(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		apierrors.AbortWithError(c, apierrors.Unauthorized("Unauthorized - No token provided"))
		return
	}
	if h.authProcessor.IsAnonKey(token) {
		c.Next()
		return
	}
	h.authenticate(c, token)
}

// HandleAdminMiddleware requires a valid admin token
func (h *Handler) HandleAdminMiddleware(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		apierrors.AbortWithError(c, apierrors.Unauthorized("Unauthorized - No token provided"))
		return
	}
	if h.authProcessor.IsAnonKey(token) {
		apierrors.AbortWithError(c, apierrors.Unauthorized("Unauthorized - Admin token required"))
		return
	}
	h.authenticate(c, token)
}

func (h *Handler) authenticate(c *gin.Context, token string) {
	ctx := c.Request.Context()

	principal, err := h.authProcessor.Authenticate(ctx, token)
	if err != nil {
		apierrors.AbortWithError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: principal.AdminID})
	c.Request = c.Request.WithContext(ctx)
	c.Set(adminIDKey, principal.AdminID)
	c.Set(principalKey, principal)
	c.Next()
}

// RequirePermission admits admins holding at least one of capabilities.
// Must run after HandleAdminMiddleware.
func RequirePermission(capabilities ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			apierrors.AbortWithError(c, apierrors.Unauthorized("Unauthorized"))
			return
		}
		if !access.HasAnyPermission(principal.Access(), capabilities...) {
			apierrors.AbortWithError(c, apierrors.Forbidden("You do not have permission to access this resource"))
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin admits only the super admin
func RequireSuperAdmin(c *gin.Context) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		apierrors.AbortWithError(c, apierrors.Unauthorized("Unauthorized"))
		return
	}
	if principal.Role != store.AdminRoleSuperAdmin {
		apierrors.AbortWithError(c, apierrors.Forbidden("Only the super admin can manage admin users"))
		return
	}
	c.Next()
}

// PrincipalFromContext returns the admin set by the auth middleware
func PrincipalFromContext(c *gin.Context) (processor.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return processor.Principal{}, false
	}
	principal, ok := v.(processor.Principal)
	return principal, ok
}
