package handler

import (
	"boatshow-server/internal/apierrors"
	"boatshow-server/internal/observability"
	"boatshow-server/internal/promocodes/processor"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.PromoCodeProcessor
	logger    *observability.Logger
}

func New(processor processor.PromoCodeProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type ValidatePromoCodeRequest struct {
	Code string `json:"code"`
}

// HandleValidatePromoCode handles POST /promo-codes/validate
func (h *Handler) HandleValidatePromoCode(c *gin.Context) {
	ctx := c.Request.Context()

	var req ValidatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.Validate(ctx, req.Code)
	if err != nil {
		if errors.Is(err, processor.ErrPromoCodeRequired) {
			c.JSON(http.StatusBadRequest, processor.ValidationResult{Valid: false, Reason: "Promo code is required"})
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleListPromoCodes handles GET /promo-codes
func (h *Handler) HandleListPromoCodes(c *gin.Context) {
	codes, err := h.processor.ListPromoCodes(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"promoCodes": codes})
}

type CreatePromoCodeRequest struct {
	Code        string     `json:"code" binding:"required,max=64"`
	Description string     `json:"description" binding:"max=500"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	MaxUses     int        `json:"maxUses" binding:"gte=0"`
	Active      *bool      `json:"active"`
}

// HandleCreatePromoCode handles POST /promo-codes
func (h *Handler) HandleCreatePromoCode(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	promo, err := h.processor.CreatePromoCode(ctx, processor.CreatePromoCodeRequest{
		Code:        req.Code,
		Description: req.Description,
		ExpiresAt:   req.ExpiresAt,
		MaxUses:     req.MaxUses,
		Active:      req.Active,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"promoCode": promo, "message": "Promo code created successfully"})
}

type UpdatePromoCodeRequest struct {
	Description    *string    `json:"description" binding:"omitempty,max=500"`
	ExpiresAt      *time.Time `json:"expiresAt"`
	ClearExpiresAt bool       `json:"clearExpiresAt"`
	MaxUses        *int       `json:"maxUses" binding:"omitempty,gte=0"`
	UsedCount      *int       `json:"usedCount" binding:"omitempty,gte=0"`
	Active         *bool      `json:"active"`
}

// HandleUpdatePromoCode handles PUT /promo-codes/:code
func (h *Handler) HandleUpdatePromoCode(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	promo, err := h.processor.UpdatePromoCode(ctx, c.Param("code"), processor.UpdatePromoCodeRequest{
		Description:  req.Description,
		ExpiresAt:    req.ExpiresAt,
		ClearExpires: req.ClearExpiresAt,
		MaxUses:      req.MaxUses,
		UsedCount:    req.UsedCount,
		Active:       req.Active,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"promoCode": promo, "message": "Promo code updated successfully"})
}

// HandleDeletePromoCode handles DELETE /promo-codes/:code
func (h *Handler) HandleDeletePromoCode(c *gin.Context) {
	if err := h.processor.DeletePromoCode(c.Request.Context(), c.Param("code")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Promo code deleted successfully"})
}

// HandleImportPromoCodes handles POST /promo-codes/import. The CSV is read
// from the multipart field "file" or, failing that, the raw request body.
func (h *Handler) HandleImportPromoCodes(c *gin.Context) {
	ctx := c.Request.Context()

	var src io.Reader = c.Request.Body
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			h.logger.InfoWithError(ctx, "promo code import without file", err)
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeFileRequired, "No file provided"))
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			apierrors.RespondWithError(c, err)
			return
		}
		defer file.Close()
		src = file
	}

	result, err := h.processor.ImportPromoCodes(ctx, src)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
