package handler

import (
	"boatshow-server/internal/apierrors"
	"boatshow-server/internal/observability"
	"boatshow-server/internal/uploads/processor"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead allows for form fields and boundaries around the file
const multipartOverhead = 1 << 20

type Handler struct {
	processor processor.UploadProcessor
	maxBytes  int64
	logger    *observability.Logger
}

func New(processor processor.UploadProcessor, maxBytes int64, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

// HandleUpload handles POST /upload (multipart: file, category, submissionId)
func (h *Handler) HandleUpload(c *gin.Context) {
	ctx := c.Request.Context()

	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			apierrors.RespondWithError(c, processor.ErrFileTooLarge)
			return
		}
		apierrors.RespondWithError(c, processor.ErrFileRequired)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Error(ctx, "failed to open uploaded file", err)
		apierrors.RespondWithError(c, processor.ErrFileRequired)
		return
	}
	defer file.Close()

	result, err := h.processor.Upload(ctx, processor.UploadRequest{
		Category:     c.PostForm("category"),
		SubmissionID: c.PostForm("submissionId"),
		FileName:     header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		Body:         file,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetFileURL handles GET /files/*path
func (h *Handler) HandleGetFileURL(c *gin.Context) {
	url, err := h.processor.GetFileURL(c.Request.Context(), c.Param("path"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
