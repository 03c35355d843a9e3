package apierrors

import (
	"errors"
	"net/http"
	"strings"

	adminUsersProcessor "boatshow-server/internal/adminusers/processor"
	authProcessor "boatshow-server/internal/auth/processor"
	"boatshow-server/internal/clients/turnstile"
	emailCampaignsProcessor "boatshow-server/internal/emailcampaigns/processor"
	emailTemplatesProcessor "boatshow-server/internal/emailtemplates/processor"
	promoCodesProcessor "boatshow-server/internal/promocodes/processor"
	"boatshow-server/internal/store"
	submissionsProcessor "boatshow-server/internal/submissions/processor"
	uploadsProcessor "boatshow-server/internal/uploads/processor"
)

// MapError converts processor and store errors to APIErrors.
// An APIError passes through unchanged; anything unrecognised becomes a
// sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var rejected *promoCodesProcessor.RejectedError
	if errors.As(err, &rejected) {
		return BadRequest(CodePromoCodeRejected, rejected.Reason)
	}

	switch {
	// auth
	case errors.Is(err, authProcessor.ErrInvalidCredentials):
		return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeInvalidCredentials, Message: "Invalid credentials"}

	case errors.Is(err, authProcessor.ErrInvalidToken):
		return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeInvalidToken, Message: "Invalid or expired token"}

	case errors.Is(err, turnstile.ErrMissingToken), errors.Is(err, turnstile.ErrRejected):
		return BadRequest(CodeCaptchaFailed, "Captcha verification failed. Please try again.")

	// admin users
	case errors.Is(err, adminUsersProcessor.ErrAdminUserNotFound):
		return NotFound(CodeAdminUserNotFound, "Admin user not found")

	case errors.Is(err, adminUsersProcessor.ErrUsernameExists):
		return Conflict(CodeUsernameExists, "Username already exists")

	case errors.Is(err, adminUsersProcessor.ErrInvalidPermission):
		return BadRequest(CodeInvalidPermission, "Invalid permission. Valid values: submissions, participants, campaigns, promocodes, templates, all")

	case errors.Is(err, adminUsersProcessor.ErrInvalidRole):
		return BadRequest(CodeInvalidInput, "Invalid role. Valid values: admin")

	case errors.Is(err, adminUsersProcessor.ErrSuperAdminImmutable):
		return Forbidden("The super admin account cannot be modified")

	// submissions
	case errors.Is(err, submissionsProcessor.ErrSubmissionNotFound):
		return NotFound(CodeSubmissionNotFound, "Submission not found")

	case errors.Is(err, submissionsProcessor.ErrInvalidCategory):
		return BadRequest(CodeInvalidCategory, "Invalid category. Valid values: Media, Trade, Captain/Crew/Diver, VIP, Exhibitor")

	case errors.Is(err, submissionsProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid status. Valid values: pending, approved, rejected")

	case errors.Is(err, submissionsProcessor.ErrVIPDataRequired):
		return BadRequest(CodeInvalidInput, "VIP registrations require guest details")

	// promo codes
	case errors.Is(err, promoCodesProcessor.ErrPromoCodeRequired):
		return BadRequest(CodePromoCodeRequired, "Promo code is required")

	case errors.Is(err, promoCodesProcessor.ErrPromoCodeNotFound):
		return NotFound(CodePromoCodeNotFound, "Promo code not found")

	case errors.Is(err, promoCodesProcessor.ErrPromoCodeExists):
		return BadRequest(CodePromoCodeExists, "Promo code already exists")

	case errors.Is(err, promoCodesProcessor.ErrInvalidMaxUses):
		return BadRequest(CodeInvalidInput, "maxUses must not be negative")

	case errors.Is(err, promoCodesProcessor.ErrInvalidUsedCount):
		return BadRequest(CodeInvalidInput, "usedCount must not be negative")

	case errors.Is(err, promoCodesProcessor.ErrInvalidImportFile):
		return BadRequest(CodeInvalidImportFile, "No valid promo codes found in file. Expected columns: code,description,expirationDate,capacity")

	// uploads
	case errors.Is(err, uploadsProcessor.ErrFileRequired):
		return BadRequest(CodeFileRequired, "No file provided")

	case errors.Is(err, uploadsProcessor.ErrFileTooLarge):
		return &APIError{StatusCode: http.StatusRequestEntityTooLarge, Code: CodeFileTooLarge, Message: "File exceeds the maximum upload size"}

	case errors.Is(err, uploadsProcessor.ErrSubmissionIDRequired):
		return BadRequest(CodeInvalidInput, "submissionId is required")

	case errors.Is(err, uploadsProcessor.ErrInvalidFilePath):
		return BadRequest(CodeInvalidFilePath, "Invalid file path")

	case errors.Is(err, uploadsProcessor.ErrFileNotFound):
		return NotFound(CodeNotFound, "File not found")

	// email templates
	case errors.Is(err, emailTemplatesProcessor.ErrTemplateNotFound):
		return NotFound(CodeTemplateNotFound, "Email template not found")

	case errors.Is(err, emailTemplatesProcessor.ErrInvalidTemplateContent):
		return BadRequest(CodeInvalidTemplate, "Email template could not be parsed")

	case errors.Is(err, emailTemplatesProcessor.ErrTemplateNameRequired):
		return BadRequest(CodeInvalidInput, "Template name is required")

	case errors.Is(err, emailTemplatesProcessor.ErrTestEmailFailed):
		return ServiceUnavailable(CodeEmailServiceError, "Test email could not be sent. Please try again later.", err)

	// email campaigns and mailing lists
	case errors.Is(err, emailCampaignsProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Email campaign not found")

	case errors.Is(err, emailCampaignsProcessor.ErrCampaignNameRequired):
		return BadRequest(CodeInvalidInput, "Campaign name is required")

	case errors.Is(err, emailCampaignsProcessor.ErrMailingListNameRequired):
		return BadRequest(CodeInvalidInput, "Mailing list name is required")

	case errors.Is(err, emailCampaignsProcessor.ErrCampaignAlreadySent):
		return Conflict(CodeCampaignAlreadySent, "Email campaign has already been sent")

	case errors.Is(err, emailCampaignsProcessor.ErrNoRecipients):
		return BadRequest(CodeNoRecipients, "Email campaign has no recipients")

	case errors.Is(err, emailCampaignsProcessor.ErrInvalidCampaignContent):
		return BadRequest(CodeInvalidTemplate, "Email campaign subject or body could not be parsed")

	case errors.Is(err, emailCampaignsProcessor.ErrMailingListNotFound):
		return NotFound(CodeMailingListNotFound, "Mailing list not found")

	case errors.Is(err, emailCampaignsProcessor.ErrDefaultListReadOnly):
		return &APIError{StatusCode: http.StatusForbidden, Code: CodeMailingListReadOnly, Message: "Default mailing lists cannot be deleted"}

	// store
	case errors.Is(err, store.ErrVersionConflict):
		return Conflict(CodeConflict, "The record was modified by another request. Reload and try again.")

	case errors.Is(err, store.ErrAlreadyExists):
		return Conflict(CodeConflict, "Resource already exists")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError identifies upstream provider failures by message
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") || strings.Contains(errMsg, "ses:") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "turnstile") {
		return ServiceUnavailable(
			CodeCaptchaServiceError,
			"Captcha verification is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "object storage") || strings.Contains(errMsg, "s3:") {
		return ServiceUnavailable(
			CodeStorageServiceError,
			"File storage is temporarily unavailable. Please try again later.",
			err,
		)
	}

	return InternalError(err)
}
