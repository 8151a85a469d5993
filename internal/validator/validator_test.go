package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	type fundInput struct {
		Status string `validate:"fund_status"`
	}
	type investorInput struct {
		InvestorType string `validate:"investor_type"`
	}

	tests := []struct {
		name    string
		input   interface{}
		wantErr bool
	}{
		{"fund_status_valid", fundInput{Status: "Investing"}, false},
		{"fund_status_wrong_case", fundInput{Status: "investing"}, true},
		{"fund_status_unknown", fundInput{Status: "Open"}, true},
		{"investor_type_family_office", investorInput{InvestorType: "Family Office"}, false},
		{"investor_type_institution", investorInput{InvestorType: "Institution"}, false},
		{"investor_type_unknown", investorInput{InvestorType: "Bank"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	type request struct {
		InvestorType string `json:"investor_type" validate:"required"`
	}

	err := v.Struct(request{})
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) != 1 {
		t.Fatalf("expected one validation error, got %v", err)
	}
	if verrs[0].Field() != "investor_type" {
		t.Errorf("expected json field name, got %q", verrs[0].Field())
	}
}
