package apierrors

import (
	"errors"
	"io"
	"net/http"

	"boatshow-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var logger = observability.NewLogger()

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code"`
	Fields []string `json:"fields,omitempty"`
}

// RespondWithError maps err and writes the sanitized response. Processors log
// the underlying failure; the entry written here ties it to the request id.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	writeError(c, MapError(err), nil)
}

// AbortWithError is RespondWithError for middleware
func AbortWithError(c *gin.Context, err error) {
	RespondWithError(c, err)
	c.Abort()
}

// RespondWithValidationError reports a failed ShouldBind* call. Field-level
// failures list the offending JSON fields; anything else is a malformed body.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		fields := make([]string, len(validationErrs))
		for i, fe := range validationErrs {
			fields[i] = fe.Field()
		}
		writeError(c, ValidationError(validationErrs), fields)
	case errors.Is(err, io.EOF):
		writeError(c, BadRequest(CodeInvalidInput, "Request body is required"), nil)
	default:
		writeError(c, &APIError{
			StatusCode: http.StatusBadRequest,
			Code:       CodeInvalidInput,
			Message:    "Invalid request format. Please check your JSON syntax.",
			Err:        err,
		}, nil)
	}
}

func writeError(c *gin.Context, apiErr *APIError, fields []string) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	switch {
	case apiErr.StatusCode >= http.StatusInternalServerError:
		logger.Error(ctx, "API error response", apiErr.Err)
	case apiErr.Err != nil:
		logger.InfoWithError(ctx, "API error response", apiErr.Err)
	default:
		logger.Info(ctx, "API error response")
	}

	c.JSON(apiErr.StatusCode, ErrorResponse{
		Error:  apiErr.Message,
		Code:   apiErr.Code,
		Fields: fields,
	})
}
