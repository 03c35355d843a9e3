package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authProcessor "boatshow-server/internal/auth/processor"
	"boatshow-server/internal/clients/turnstile"
	emailCampaignsProcessor "boatshow-server/internal/emailcampaigns/processor"
	promoCodesProcessor "boatshow-server/internal/promocodes/processor"
	"boatshow-server/internal/store"
	submissionsProcessor "boatshow-server/internal/submissions/processor"
	uploadsProcessor "boatshow-server/internal/uploads/processor"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", authProcessor.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
		{"wrapped not found", fmt.Errorf("approve: %w", submissionsProcessor.ErrSubmissionNotFound), http.StatusNotFound, CodeSubmissionNotFound},
		{"duplicate promo code is a bad request", promoCodesProcessor.ErrPromoCodeExists, http.StatusBadRequest, CodePromoCodeExists},
		{"rejected promo code", &promoCodesProcessor.RejectedError{Code: "X", Reason: promoCodesProcessor.ReasonExpired}, http.StatusBadRequest, CodePromoCodeRejected},
		{"file too large", uploadsProcessor.ErrFileTooLarge, http.StatusRequestEntityTooLarge, CodeFileTooLarge},
		{"campaign already sent", emailCampaignsProcessor.ErrCampaignAlreadySent, http.StatusConflict, CodeCampaignAlreadySent},
		{"default list read only", emailCampaignsProcessor.ErrDefaultListReadOnly, http.StatusForbidden, CodeMailingListReadOnly},
		{"version conflict", store.ErrVersionConflict, http.StatusConflict, CodeConflict},
		{"email provider outage", errors.New("resend: 502 bad gateway"), http.StatusServiceUnavailable, CodeEmailServiceError},
		{"storage outage", errors.New("s3: connection reset"), http.StatusServiceUnavailable, CodeStorageServiceError},
		{"captcha rejected", turnstile.ErrRejected, http.StatusBadRequest, CodeCaptchaFailed},
		{"captcha outage", errors.New("turnstile: context deadline exceeded"), http.StatusServiceUnavailable, CodeCaptchaServiceError},
		{"unknown", errors.New("pq: relation kv_store does not exist"), http.StatusInternalServerError, CodeInternalError},
		{"api error passes through", Forbidden("nope"), http.StatusForbidden, CodeForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			apiErr := MapError(tt.err)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}

	assert.Nil(t, MapError(nil))
}

func TestMapError_RejectedReasonIsTheMessage(t *testing.T) {
	t.Parallel()

	apiErr := MapError(&promoCodesProcessor.RejectedError{Code: "GOLDTICKET", Reason: promoCodesProcessor.ReasonExhausted})
	assert.Equal(t, promoCodesProcessor.ReasonExhausted, apiErr.Message)
}

func TestRespondWithError_SanitizesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithError(c, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeInternalError, body.Code)
	assert.NotContains(t, body.Error, "10.0.0.5")
}

func TestRespondWithValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type request struct {
		Email string `json:"email" binding:"required,email"`
	}

	tests := []struct {
		name     string
		body     string
		wantCode string
		wantMsg  string
	}{
		{"missing field", `{}`, CodeInvalidInput, "email is required"},
		{"bad email", `{"email":"not-an-email"}`, CodeInvalidInput, "email must be a valid email address"},
		{"malformed json", `{"email":`, CodeInvalidInput, "Invalid request format. Please check your JSON syntax."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req request
			err := c.ShouldBindJSON(&req)
			require.Error(t, err)
			RespondWithValidationError(c, err)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Contains(t, body.Error, tt.wantMsg)
		})
	}
}

func TestRespondWithValidationErrorListsFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type request struct {
		Username string `json:"username" binding:"required,min=3"`
		Password string `json:"password" binding:"required"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"ab"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req request
	RespondWithValidationError(c, c.ShouldBindJSON(&req))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"username", "password"}, body.Fields)
	assert.Equal(t, "Validation failed: username must be at least 3 characters; password is required", body.Error)
}

func TestRespondWithValidationErrorEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	c.Request.Header.Set("Content-Type", "application/json")

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	RespondWithValidationError(c, c.ShouldBindJSON(&req))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Request body is required", body.Error)
	assert.Empty(t, body.Fields)
}
