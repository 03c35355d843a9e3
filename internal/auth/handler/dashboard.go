package handler

import (
	"boatshow-server/internal/access"
	"boatshow-server/internal/apierrors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleDashboardSections handles GET /dashboard/sections
func (h *Handler) HandleDashboardSections(c *gin.Context) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Unauthorized"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"sections": access.VisibleSections(principal.Access())})
}

type CheckPINRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// HandleCheckPIN handles POST /dashboard/pin. It only answers whether the PIN
// matches; no API call is ever authorised by it.
func (h *Handler) HandleCheckPIN(c *gin.Context) {
	var req CheckPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if !h.pinGate.Check(req.PIN) {
		h.logger.Info(c.Request.Context(), "incorrect dashboard pin")
		apierrors.RespondWithError(c, &apierrors.APIError{StatusCode: http.StatusForbidden, Code: apierrors.CodeInvalidPIN, Message: "Incorrect PIN"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
