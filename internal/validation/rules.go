package validation

import "privatemarkets/internal/models"

// Rule sets for each route, in the order their messages are reported.
var (
	FundIDRules = []Rule{
		{Field: "fund_id", Required: true, Type: TypeUUID},
	}

	InvestmentIDRules = []Rule{
		{Field: "fund_id", Required: true, Type: TypeUUID},
		{Field: "investment_id", Required: true, Type: TypeUUID},
	}

	InvestorIDRules = []Rule{
		{Field: "investor_id", Required: true, Type: TypeUUID},
	}

	CreateFundRules = []Rule{
		{Field: "name", Required: true, Type: TypeString},
		{Field: "vintage_year", Required: true, Type: TypeNumber, Min: Bound(1900), Max: Bound(2100)},
		{Field: "target_size_usd", Required: true, Type: TypeNumber, Min: Bound(0)},
		{Field: "status", Required: true, Type: TypeString, Enum: models.FundStatuses},
	}

	UpdateFundRules = append([]Rule{
		{Field: "id", Required: true, Type: TypeUUID},
	}, CreateFundRules...)

	CreateInvestorRules = []Rule{
		{Field: "name", Required: true, Type: TypeString},
		{Field: "investor_type", Required: true, Type: TypeString, Enum: models.InvestorTypes},
		{Field: "email", Required: true, Type: TypeEmail},
	}

	CreateInvestmentRules = []Rule{
		{Field: "fund_id", Required: true, Type: TypeUUID},
		{Field: "investor_id", Required: true, Type: TypeUUID},
		{Field: "amount_usd", Required: true, Type: TypeNumber, Min: Bound(0)},
		{Field: "investment_date", Required: true, Type: TypeDate},
	}
)
