package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "privatemarkets/internal/errors"
	"privatemarkets/internal/middleware"
	"privatemarkets/internal/services"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Message string   `json:"message"`
	Code    string   `json:"code"`
	Errors  []string `json:"errors,omitempty"`
}

// respondWithError hands err to the error middleware and stops the chain.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// recordAudit logs a completed write with the caller's address and the
// request id assigned by the logging middleware.
func recordAudit(c *gin.Context, audit services.AuditServicer, action, resourceType, resourceID string, changes map[string]interface{}) {
	audit.Log(c.Request.Context(), services.AuditEntry{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    c.ClientIP(),
		RequestID:    middleware.RequestID(c),
		Changes:      changes,
	})
}

// bindJSON binds the request body into req. Binding failures become
// validation errors naming the offending fields.
func bindJSON(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fieldMessage(fe))
		}
		return apperrors.WithErrors(apperrors.ErrValidation, messages)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.WithErrors(apperrors.ErrValidation, []string{typeMessage(typeErr)})
	}

	return apperrors.Wrap(apperrors.ErrInvalidFormat, err)
}

func typeMessage(typeErr *json.UnmarshalTypeError) string {
	switch typeErr.Type.Kind() {
	case reflect.Int, reflect.Int64, reflect.Float64, reflect.Ptr:
		return typeErr.Field + " must be a number"
	case reflect.String:
		return typeErr.Field + " must be a string"
	}
	return typeErr.Field + " has an invalid type"
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "fund_status", "investor_type":
		return fe.Field() + " is not a recognised value"
	}
	return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
}
