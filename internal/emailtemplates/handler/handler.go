package handler

import (
	"boatshow-server/internal/apierrors"
	"boatshow-server/internal/emailtemplates/processor"
	"boatshow-server/internal/observability"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.EmailTemplateProcessor
	logger    *observability.Logger
}

func New(processor processor.EmailTemplateProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateEmailTemplateRequest represents the HTTP request for creating an email template
type CreateEmailTemplateRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Subject string `json:"subject" binding:"max=255"`
	Body    string `json:"body"`
	Preview string `json:"preview" binding:"max=500"`
}

// HandleCreateEmailTemplate handles POST /email-templates
func (h *Handler) HandleCreateEmailTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	template, err := h.processor.CreateEmailTemplate(ctx, processor.CreateEmailTemplateRequest{
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
		Preview: req.Preview,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"template": template,
		"message":  "Email template created successfully",
	})
}

// HandleListEmailTemplates handles GET /email-templates
func (h *Handler) HandleListEmailTemplates(c *gin.Context) {
	templates, err := h.processor.ListEmailTemplates(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// HandleGetEmailTemplate handles GET /email-templates/:id
func (h *Handler) HandleGetEmailTemplate(c *gin.Context) {
	template, err := h.processor.GetEmailTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": template})
}

type UpdateEmailTemplateRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Subject *string `json:"subject" binding:"omitempty,max=255"`
	Body    *string `json:"body"`
	Preview *string `json:"preview" binding:"omitempty,max=500"`
}

// HandleUpdateEmailTemplate handles PUT /email-templates/:id
func (h *Handler) HandleUpdateEmailTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	template, err := h.processor.UpdateEmailTemplate(ctx, c.Param("id"), processor.UpdateEmailTemplateRequest{
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
		Preview: req.Preview,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"template": template,
		"message":  "Email template updated successfully",
	})
}

// HandleDeleteEmailTemplate handles DELETE /email-templates/:id
func (h *Handler) HandleDeleteEmailTemplate(c *gin.Context) {
	if err := h.processor.DeleteEmailTemplate(c.Request.Context(), c.Param("id")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email template deleted successfully"})
}

// SendTestEmailRequest represents the HTTP request for sending a test email
type SendTestEmailRequest struct {
	RecipientEmail string         `json:"recipientEmail" binding:"required,email"`
	TestData       map[string]any `json:"testData"`
}

// HandleSendTestEmail handles POST /email-templates/:id/test
func (h *Handler) HandleSendTestEmail(c *gin.Context) {
	ctx := c.Request.Context()

	var req SendTestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	err := h.processor.SendTestEmail(ctx, c.Param("id"), processor.SendTestEmailRequest{
		RecipientEmail: req.RecipientEmail,
		TestData:       req.TestData,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Test email sent successfully"})
}
