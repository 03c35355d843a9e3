package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeRateLimited         = "RATE_LIMITED"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeSubmissionNotFound  = "SUBMISSION_NOT_FOUND"
	CodeInvalidCategory     = "INVALID_CATEGORY"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodePromoCodeRequired   = "PROMO_CODE_REQUIRED"
	CodePromoCodeNotFound   = "PROMO_CODE_NOT_FOUND"
	CodePromoCodeExists     = "PROMO_CODE_EXISTS"
	CodePromoCodeRejected   = "PROMO_CODE_REJECTED"
	CodeInvalidImportFile   = "INVALID_IMPORT_FILE"
	CodeAdminUserNotFound   = "ADMIN_USER_NOT_FOUND"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeInvalidPermission   = "INVALID_PERMISSION"
	CodeSuperAdminImmutable = "SUPER_ADMIN_IMMUTABLE"
	CodeFileRequired        = "FILE_REQUIRED"
	CodeFileTooLarge        = "FILE_TOO_LARGE"
	CodeInvalidFilePath     = "INVALID_FILE_PATH"
	CodeTemplateNotFound    = "TEMPLATE_NOT_FOUND"
	CodeInvalidTemplate     = "INVALID_TEMPLATE"
	CodeCampaignNotFound    = "CAMPAIGN_NOT_FOUND"
	CodeCampaignAlreadySent = "CAMPAIGN_ALREADY_SENT"
	CodeNoRecipients        = "NO_RECIPIENTS"
	CodeMailingListNotFound = "MAILING_LIST_NOT_FOUND"
	CodeMailingListReadOnly = "MAILING_LIST_READ_ONLY"
	CodeStorageServiceError = "STORAGE_SERVICE_ERROR"
	CodeEmailServiceError   = "EMAIL_SERVICE_ERROR"
	CodeInvalidPIN          = "INVALID_PIN"
	CodeCaptchaFailed       = "CAPTCHA_FAILED"
	CodeCaptchaServiceError = "CAPTCHA_SERVICE_ERROR"
)

// APIError is an error that knows how it should be rendered to a client.
// Err holds the internal cause and is never serialised.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimited, Message: message}
}

// ServiceUnavailable wraps an upstream failure. The cause is logged, not returned.
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError is a sanitized 500 that never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
