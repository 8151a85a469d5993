// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/funds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "List funds",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Fund"}}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "Create fund",
                "parameters": [
                    {"description": "Fund details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateFundRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Fund"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "Update fund",
                "parameters": [
                    {"description": "Fund details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateFundRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Fund"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Fund not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/funds/{fund_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "Get fund",
                "parameters": [
                    {"type": "string", "description": "Fund ID (UUID)", "name": "fund_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Fund"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Fund not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/funds/{fund_id}/investments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "List fund investments",
                "parameters": [
                    {"type": "string", "description": "Fund ID (UUID)", "name": "fund_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Investment"}}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Create investment",
                "parameters": [
                    {"type": "string", "description": "Fund ID (UUID)", "name": "fund_id", "in": "path", "required": true},
                    {"description": "Investment details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateInvestmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Investment"}},
                    "400": {"description": "Validation failed or referenced record missing", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/funds/{fund_id}/investments/{investment_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Get investment",
                "parameters": [
                    {"type": "string", "description": "Fund ID (UUID)", "name": "fund_id", "in": "path", "required": true},
                    {"type": "string", "description": "Investment ID (UUID)", "name": "investment_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Investment"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Investment not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/funds/{fund_id}/analytics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Fund analytics",
                "parameters": [
                    {"type": "string", "description": "Fund ID (UUID)", "name": "fund_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analytics.FundAnalytics"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Fund not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/investors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investors"],
                "summary": "List investors",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Investor"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["investors"],
                "summary": "Create investor",
                "parameters": [
                    {"description": "Investor details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateInvestorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Investor"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/investors/{investor_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investors"],
                "summary": "Get investor",
                "parameters": [
                    {"type": "string", "description": "Investor ID (UUID)", "name": "investor_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Investor"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Investor not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "code": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "timestamp": {"type": "string", "example": "2024-03-15T10:00:00Z"}
            }
        },
        "handlers.CreateFundRequest": {
            "type": "object",
            "required": ["name", "status", "target_size_usd", "vintage_year"],
            "properties": {
                "name": {"type": "string"},
                "vintage_year": {"type": "integer", "minimum": 1900, "maximum": 2100},
                "target_size_usd": {"type": "number", "minimum": 0},
                "status": {"type": "string", "enum": ["Fundraising", "Investing", "Closed"]}
            }
        },
        "handlers.UpdateFundRequest": {
            "type": "object",
            "required": ["id", "name", "status", "target_size_usd", "vintage_year"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "vintage_year": {"type": "integer", "minimum": 1900, "maximum": 2100},
                "target_size_usd": {"type": "number", "minimum": 0},
                "status": {"type": "string", "enum": ["Fundraising", "Investing", "Closed"]}
            }
        },
        "handlers.CreateInvestorRequest": {
            "type": "object",
            "required": ["email", "investor_type", "name"],
            "properties": {
                "name": {"type": "string"},
                "investor_type": {"type": "string", "enum": ["Individual", "Institution", "Family Office"]},
                "email": {"type": "string"}
            }
        },
        "handlers.CreateInvestmentRequest": {
            "type": "object",
            "required": ["amount_usd", "investment_date", "investor_id"],
            "properties": {
                "investor_id": {"type": "string"},
                "amount_usd": {"type": "number", "minimum": 0},
                "investment_date": {"type": "string", "example": "2024-03-15"}
            }
        },
        "models.Fund": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "vintage_year": {"type": "integer"},
                "target_size_usd": {"type": "number"},
                "status": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.Investor": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "investor_type": {"type": "string"},
                "email": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.Investment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "fund_id": {"type": "string"},
                "investor_id": {"type": "string"},
                "amount_usd": {"type": "number"},
                "investment_date": {"type": "string"},
                "created_at": {"type": "string"},
                "investor": {"$ref": "#/definitions/models.Investor"}
            }
        },
        "analytics.FundAnalytics": {
            "type": "object",
            "properties": {
                "fund_id": {"type": "string"},
                "total_raised": {"type": "number"},
                "target_size": {"type": "number"},
                "utilization_pct": {"type": "number"},
                "investor_count": {"type": "integer"},
                "average_investment": {"type": "number"},
                "top_investors": {"type": "array", "items": {"$ref": "#/definitions/analytics.TopInvestor"}},
                "by_investor_type": {"type": "object", "additionalProperties": {"$ref": "#/definitions/analytics.TypeBreakdown"}},
                "fee_distribution": {"$ref": "#/definitions/analytics.FeeDistribution"}
            }
        },
        "analytics.TopInvestor": {
            "type": "object",
            "properties": {
                "investor_id": {"type": "string"},
                "investor_name": {"type": "string"},
                "total_invested": {"type": "number"},
                "percentage": {"type": "number"},
                "rank": {"type": "integer"}
            }
        },
        "analytics.TypeBreakdown": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "total": {"type": "number"},
                "percentage": {"type": "number"}
            }
        },
        "analytics.FeeDistribution": {
            "type": "object",
            "properties": {
                "total_management_fee": {"type": "number"},
                "by_investor": {"type": "array", "items": {"$ref": "#/definitions/analytics.FeeAllocation"}}
            }
        },
        "analytics.FeeAllocation": {
            "type": "object",
            "properties": {
                "investor_id": {"type": "string"},
                "investor_name": {"type": "string"},
                "invested_amount": {"type": "number"},
                "fee": {"type": "number"},
                "percentage": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Private Markets API",
	Description:      "Funds, investors and investments with fund-level analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
