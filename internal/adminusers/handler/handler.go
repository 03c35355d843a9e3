package handler

import (
	"boatshow-server/internal/adminusers/processor"
	"boatshow-server/internal/apierrors"
	"boatshow-server/internal/observability"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AdminUserProcessor
	logger    *observability.Logger
}

func New(processor processor.AdminUserProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListAdminUsers handles GET /admin-users
func (h *Handler) HandleListAdminUsers(c *gin.Context) {
	admins, err := h.processor.ListAdminUsers(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admins": admins})
}

type SignUpRequest struct {
	Username    string   `json:"username" binding:"required,min=3,max=64"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8,max=72"`
	Role        string   `json:"role" binding:"omitempty,oneof=admin"`
	Permissions []string `json:"permissions"`
}

// HandleSignUp handles POST /auth/signup. Only the super admin reaches it.
func (h *Handler) HandleSignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	user, err := h.processor.CreateAdminUser(ctx, processor.CreateAdminUserRequest{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Permissions: req.Permissions,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin user created successfully", "user": user})
}

type UpdateAdminUserRequest struct {
	Username    *string   `json:"username" binding:"omitempty,min=3,max=64"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Password    *string   `json:"password" binding:"omitempty,min=8,max=72"`
	Permissions *[]string `json:"permissions"`
}

// HandleUpdateAdminUser handles PUT /admin-users/:id
func (h *Handler) HandleUpdateAdminUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	user, err := h.processor.UpdateAdminUser(ctx, c.Param("id"), processor.UpdateAdminUserRequest{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Permissions: req.Permissions,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user})
}

// HandleDeleteAdminUser handles DELETE /admin-users/:id
func (h *Handler) HandleDeleteAdminUser(c *gin.Context) {
	if err := h.processor.DeleteAdminUser(c.Request.Context(), c.Param("id")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin user deleted successfully"})
}
