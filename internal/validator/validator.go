// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"privatemarkets/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on an explicit validator
// instance. Field errors report JSON field names.
func RegisterOn(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("fund_status", validateFundStatus)
	_ = v.RegisterValidation("investor_type", validateInvestorType)
}

func validateFundStatus(fl validator.FieldLevel) bool {
	return contains(models.FundStatuses, fl.Field().String())
}

func validateInvestorType(fl validator.FieldLevel) bool {
	return contains(models.InvestorTypes, fl.Field().String())
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
