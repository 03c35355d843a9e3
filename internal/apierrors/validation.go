package apierrors

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName reports fields by the name clients send, falling back to the Go name
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

// ValidationError builds a 400 naming every field that failed binding
func ValidationError(validationErrs validator.ValidationErrors) *APIError {
	if len(validationErrs) == 0 {
		return BadRequest(CodeInvalidInput, "Invalid request")
	}

	messages := make([]string, len(validationErrs))
	for i, fieldErr := range validationErrs {
		messages[i] = fieldMessage(fieldErr)
	}
	if len(messages) == 1 {
		return BadRequest(CodeInvalidInput, messages[0])
	}
	return BadRequest(CodeInvalidInput, "Validation failed: "+strings.Join(messages, "; "))
}

func fieldMessage(fieldErr validator.FieldError) string {
	field, param := fieldErr.Field(), fieldErr.Param()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min", "max":
		bound := "at least"
		if fieldErr.Tag() == "max" {
			bound = "at most"
		}
		if fieldErr.Kind() == reflect.Slice || fieldErr.Kind() == reflect.Map {
			return fmt.Sprintf("%s must contain %s %s items", field, bound, param)
		}
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s must be %s %s characters", field, bound, param)
		}
		return fmt.Sprintf("%s must be %s %s", field, bound, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "url":
		return field + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fieldErr.Tag())
	}
}
