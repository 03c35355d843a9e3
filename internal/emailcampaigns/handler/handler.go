package handler

import (
	"boatshow-server/internal/apierrors"
	"boatshow-server/internal/emailcampaigns/processor"
	"boatshow-server/internal/observability"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.EmailCampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.EmailCampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating an email campaign
type CreateCampaignRequest struct {
	CampaignName  string   `json:"campaignName" binding:"required,max=255"`
	From          string   `json:"from" binding:"omitempty,email"`
	To            []string `json:"to"`
	MailingListID string   `json:"mailingListId"`
	Template      string   `json:"template"`
	Subject       string   `json:"subject" binding:"required,max=255"`
	Body          string   `json:"body" binding:"required"`
}

// HandleCreateCampaign handles POST /email-campaigns
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignRequest{
		CampaignName:  req.CampaignName,
		From:          req.From,
		To:            req.To,
		MailingListID: req.MailingListID,
		Template:      req.Template,
		Subject:       req.Subject,
		Body:          req.Body,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"campaign": campaign,
		"message":  "Email campaign created successfully",
	})
}

// HandleListCampaigns handles GET /email-campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	campaigns, err := h.processor.ListCampaigns(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleGetCampaign handles GET /email-campaigns/:id
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	campaign, err := h.processor.GetCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

type UpdateCampaignRequest struct {
	CampaignName *string   `json:"campaignName" binding:"omitempty,max=255"`
	From         *string   `json:"from" binding:"omitempty,email"`
	To           *[]string `json:"to"`
	Template     *string   `json:"template"`
	Subject      *string   `json:"subject" binding:"omitempty,max=255"`
	Body         *string   `json:"body"`
}

// HandleUpdateCampaign handles PUT /email-campaigns/:id
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaign(ctx, c.Param("id"), processor.UpdateCampaignRequest{
		CampaignName: req.CampaignName,
		From:         req.From,
		To:           req.To,
		Template:     req.Template,
		Subject:      req.Subject,
		Body:         req.Body,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign": campaign,
		"message":  "Email campaign updated successfully",
	})
}

// HandleDeleteCampaign handles DELETE /email-campaigns/:id
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	if err := h.processor.DeleteCampaign(c.Request.Context(), c.Param("id")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email campaign deleted successfully"})
}

// HandleSendCampaign handles POST /email-campaigns/:id/send
func (h *Handler) HandleSendCampaign(c *gin.Context) {
	campaign, err := h.processor.SendCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign": campaign,
		"queued":   campaign.QueuedCount,
		"message":  "Email campaign queued for delivery",
	})
}

// HandleListMailingLists handles GET /mailing-lists
func (h *Handler) HandleListMailingLists(c *gin.Context) {
	lists, err := h.processor.ListMailingLists(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mailingLists": lists})
}

// HandleGetMailingList handles GET /mailing-lists/:id
func (h *Handler) HandleGetMailingList(c *gin.Context) {
	ml, err := h.processor.GetMailingList(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mailingList": ml})
}

// CreateMailingListRequest represents the HTTP request for creating a custom mailing list
type CreateMailingListRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description" binding:"max=500"`
	Contacts    []string `json:"contacts" binding:"required,min=1"`
}

// HandleCreateMailingList handles POST /mailing-lists
func (h *Handler) HandleCreateMailingList(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateMailingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ml, err := h.processor.CreateMailingList(ctx, processor.CreateMailingListRequest{
		Name:        req.Name,
		Description: req.Description,
		Contacts:    req.Contacts,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mailingList": ml,
		"message":     "Mailing list created successfully",
	})
}

// HandleDeleteMailingList handles DELETE /mailing-lists/:id
func (h *Handler) HandleDeleteMailingList(c *gin.Context) {
	if err := h.processor.DeleteMailingList(c.Request.Context(), c.Param("id")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mailing list deleted successfully"})
}
