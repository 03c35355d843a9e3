package handler

import (
	"boatshow-server/internal/apierrors"
	authhandler "boatshow-server/internal/auth/handler"
	"boatshow-server/internal/observability"
	"boatshow-server/internal/store"
	"boatshow-server/internal/submissions/processor"
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.SubmissionProcessor
	logger    *observability.Logger
}

func New(processor processor.SubmissionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateSubmissionRequest struct {
	Category             string         `json:"category" binding:"required"`
	Email                string         `json:"email" binding:"required,email"`
	FirstName            string         `json:"firstName" binding:"required,max=100"`
	LastName             string         `json:"lastName" binding:"required,max=100"`
	Company              string         `json:"company" binding:"max=200"`
	JobTitle             string         `json:"jobTitle" binding:"max=200"`
	Website              string         `json:"website" binding:"max=500"`
	LinkedIn             string         `json:"linkedin" binding:"max=500"`
	Phone                string         `json:"phone" binding:"max=50"`
	Country              string         `json:"country" binding:"max=100"`
	BusinessCard         string         `json:"businessCard"`
	BusinessCardPath     string         `json:"businessCardPath"`
	VerificationDoc      string         `json:"verificationDoc"`
	VerificationDocPath  string         `json:"verificationDocPath"`
	HasAccompanyingGuest *bool          `json:"hasAccompanyingGuest"`
	VIPData              *store.VIPData `json:"vipData"`
	Status               string         `json:"status"`
}

// HandleCreateSubmission handles POST /submissions
func (h *Handler) HandleCreateSubmission(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	_, byAdmin := authhandler.PrincipalFromContext(c)

	sub, err := h.processor.CreateSubmission(ctx, processor.CreateSubmissionRequest{
		Category:             req.Category,
		Email:                req.Email,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Company:              req.Company,
		JobTitle:             req.JobTitle,
		Website:              req.Website,
		LinkedIn:             req.LinkedIn,
		Phone:                req.Phone,
		Country:              req.Country,
		BusinessCard:         req.BusinessCard,
		BusinessCardPath:     req.BusinessCardPath,
		VerificationDoc:      req.VerificationDoc,
		VerificationDocPath:  req.VerificationDocPath,
		HasAccompanyingGuest: req.HasAccompanyingGuest,
		VIPData:              req.VIPData,
		Status:               req.Status,
		ByAdmin:              byAdmin,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"submission": sub,
		"message":    "Submission created successfully",
	})
}

// HandleListSubmissions handles GET /submissions?category=&status=
func (h *Handler) HandleListSubmissions(c *gin.Context) {
	subs, err := h.processor.ListSubmissions(c.Request.Context(), processor.ListSubmissionsFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

// HandleGetSubmission handles GET /submissions/:id
func (h *Handler) HandleGetSubmission(c *gin.Context) {
	sub, err := h.processor.GetSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submission": sub})
}

type UpdateSubmissionRequest struct {
	Category             *string        `json:"category"`
	Email                *string        `json:"email" binding:"omitempty,email"`
	FirstName            *string        `json:"firstName" binding:"omitempty,max=100"`
	LastName             *string        `json:"lastName" binding:"omitempty,max=100"`
	Company              *string        `json:"company" binding:"omitempty,max=200"`
	JobTitle             *string        `json:"jobTitle"`
	Website              *string        `json:"website"`
	LinkedIn             *string        `json:"linkedin"`
	Phone                *string        `json:"phone"`
	Country              *string        `json:"country"`
	BusinessCard         *string        `json:"businessCard"`
	BusinessCardPath     *string        `json:"businessCardPath"`
	VerificationDoc      *string        `json:"verificationDoc"`
	VerificationDocPath  *string        `json:"verificationDocPath"`
	HasAccompanyingGuest *bool          `json:"hasAccompanyingGuest"`
	VIPData              *store.VIPData `json:"vipData"`
	Status               *string        `json:"status"`
	ApprovalMessage      *string        `json:"approvalMessage"`
	RejectionMessage     *string        `json:"rejectionMessage"`
}

// HandleUpdateSubmission handles PUT /submissions/:id
func (h *Handler) HandleUpdateSubmission(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	sub, err := h.processor.UpdateSubmission(ctx, c.Param("id"), processor.UpdateSubmissionRequest{
		Category:             req.Category,
		Email:                req.Email,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Company:              req.Company,
		JobTitle:             req.JobTitle,
		Website:              req.Website,
		LinkedIn:             req.LinkedIn,
		Phone:                req.Phone,
		Country:              req.Country,
		BusinessCard:         req.BusinessCard,
		BusinessCardPath:     req.BusinessCardPath,
		VerificationDoc:      req.VerificationDoc,
		VerificationDocPath:  req.VerificationDocPath,
		HasAccompanyingGuest: req.HasAccompanyingGuest,
		VIPData:              req.VIPData,
		Status:               req.Status,
		ApprovalMessage:      req.ApprovalMessage,
		RejectionMessage:     req.RejectionMessage,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission": sub,
		"message":    "Submission updated successfully",
	})
}

type DecisionRequest struct {
	EmailMessage string `json:"emailMessage" binding:"max=10000"`
}

// HandleApproveSubmission handles POST /submissions/:id/approve
func (h *Handler) HandleApproveSubmission(c *gin.Context) {
	var req DecisionRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}

	sub, err := h.processor.Approve(c.Request.Context(), c.Param("id"), req.EmailMessage)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission": sub,
		"message":    "Submission approved and email notification queued",
	})
}

// HandleRejectSubmission handles POST /submissions/:id/reject
func (h *Handler) HandleRejectSubmission(c *gin.Context) {
	var req DecisionRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}

	sub, err := h.processor.Reject(c.Request.Context(), c.Param("id"), req.EmailMessage)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission": sub,
		"message":    "Submission rejected and email notification queued",
	})
}

// bindOptionalJSON binds the body when one was sent. An empty body leaves req zero.
func (h *Handler) bindOptionalJSON(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return false
	}
	return true
}

// HandleDeleteSubmission handles DELETE /submissions/:id
func (h *Handler) HandleDeleteSubmission(c *gin.Context) {
	if err := h.processor.DeleteSubmission(c.Request.Context(), c.Param("id")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted successfully"})
}

// HandleGetStats handles GET /stats
func (h *Handler) HandleGetStats(c *gin.Context) {
	stats, err := h.processor.GetStats(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// HandleExportParticipants handles GET /participants/export?category=
func (h *Handler) HandleExportParticipants(c *gin.Context) {
	category := c.Query("category")

	var buf bytes.Buffer
	if _, err := h.processor.ExportParticipants(c.Request.Context(), &buf, category); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFileName(category, time.Now())))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func exportFileName(category string, now time.Time) string {
	label := "All"
	if category != "" {
		label = strings.NewReplacer("/", "-", " ", "-").Replace(category)
	}
	return fmt.Sprintf("QBS_Participants_%s_%s.csv", label, now.Format(time.DateOnly))
}
