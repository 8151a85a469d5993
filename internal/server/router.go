// Package server assembles the HTTP router: middleware chain, routes with
// their validation rules, and the fallback for unknown paths.
package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "privatemarkets/internal/docs" // Register swagger docs
	"privatemarkets/internal/handlers"
	"privatemarkets/internal/middleware"
	"privatemarkets/internal/services"
	"privatemarkets/internal/validation"
	"privatemarkets/internal/validator"
)

// Options configures the router.
type Options struct {
	ServiceName        string
	TracingEnabled     bool
	CORSAllowedOrigins []string
	EnableSwagger      bool
}

// Services bundles the domain services the routes call into.
type Services struct {
	Funds       services.FundServicer
	Investors   services.InvestorServicer
	Investments services.InvestmentServicer
	Analytics   services.AnalyticsServicer
	Audit       services.AuditServicer
}

// NewServices builds the GORM-backed services over db.
func NewServices(db *gorm.DB) Services {
	return Services{
		Funds:       services.NewFundService(db),
		Investors:   services.NewInvestorService(db),
		Investments: services.NewInvestmentService(db),
		Analytics:   services.NewAnalyticsService(db),
		Audit:       services.NewAuditService(db),
	}
}

// NewRouter wires middleware and routes.
func NewRouter(svc Services, opts Options) *gin.Engine {
	validator.Register()

	fundHandler := handlers.NewFundHandler(svc.Funds, svc.Audit)
	investorHandler := handlers.NewInvestorHandler(svc.Investors, svc.Audit)
	investmentHandler := handlers.NewInvestmentHandler(svc.Investments, svc.Audit)
	analyticsHandler := handlers.NewAnalyticsHandler(svc.Analytics)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	if opts.TracingEnabled {
		router.Use(otelgin.Middleware(opts.ServiceName))
	}
	router.Use(middleware.CORS(opts.CORSAllowedOrigins))
	router.Use(middleware.ErrorHandler())

	if opts.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/health", handlers.Health)

	funds := router.Group("/funds")
	funds.GET("", fundHandler.GetAllFunds)
	funds.GET("/:fund_id", middleware.Validate(validation.FundIDRules...), fundHandler.GetFundByID)
	funds.POST("", middleware.Validate(validation.CreateFundRules...), fundHandler.CreateFund)
	funds.PUT("", middleware.Validate(validation.UpdateFundRules...), fundHandler.UpdateFund)
	funds.GET("/:fund_id/investments", middleware.Validate(validation.FundIDRules...), investmentHandler.GetFundInvestments)
	funds.GET("/:fund_id/investments/:investment_id", middleware.Validate(validation.InvestmentIDRules...), investmentHandler.GetInvestment)
	funds.POST("/:fund_id/investments", middleware.Validate(validation.CreateInvestmentRules...), investmentHandler.CreateInvestment)
	funds.GET("/:fund_id/analytics", middleware.Validate(validation.FundIDRules...), analyticsHandler.GetFundAnalytics)

	investors := router.Group("/investors")
	investors.GET("", investorHandler.GetAllInvestors)
	investors.GET("/:investor_id", middleware.Validate(validation.InvestorIDRules...), investorHandler.GetInvestorByID)
	investors.POST("", middleware.Validate(validation.CreateInvestorRules...), investorHandler.CreateInvestor)

	router.NoRoute(middleware.NotFound())

	return router
}
