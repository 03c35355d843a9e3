package handler

import (
	"boatshow-server/internal/access"
	"boatshow-server/internal/apierrors"
	"boatshow-server/internal/auth/processor"
	"boatshow-server/internal/observability"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	pinGate       access.PINGate
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, pinGate access.PINGate, logger *observability.Logger) Handler {
	return Handler{
		authProcessor: authProcessor,
		pinGate:       pinGate,
		logger:        logger,
	}
}

type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HandleSignIn handles POST /auth/signin
func (h *Handler) HandleSignIn(c *gin.Context) {
	ctx := c.Request.Context()

	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	session, err := h.authProcessor.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// HandleSession handles GET /auth/session. A missing or stale token is not
// an error here; the caller just gets a null session.
func (h *Handler) HandleSession(c *gin.Context) {
	ctx := c.Request.Context()

	token := bearerToken(c)
	if token == "" || h.authProcessor.IsAnonKey(token) {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}

	session, err := h.authProcessor.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, processor.ErrInvalidToken) {
			c.JSON(http.StatusOK, gin.H{"session": nil})
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// HandleSignOut handles POST /auth/signout. Tokens are stateless, so the
// client discarding its token is the whole of signing out.
func (h *Handler) HandleSignOut(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
