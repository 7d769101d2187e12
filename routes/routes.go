package routes

import (
	"time"

	"github.com/cblythe8/Stock-Crypto-Tracker/client"
	"github.com/cblythe8/Stock-Crypto-Tracker/config"
	"github.com/cblythe8/Stock-Crypto-Tracker/controller"
	"github.com/cblythe8/Stock-Crypto-Tracker/middleware"
	"github.com/cblythe8/Stock-Crypto-Tracker/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.SystemConfigs, cm *config.ConfigManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware)

	frontendUrl := cfg.Config.FrontendUrl
	if frontendUrl == "" {
		frontendUrl = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendUrl},
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RateLimiter(cm))

	// --- 1. Clients ---
	yahooClient := client.NewYahooClient(cfg.Config)

	// --- 2. Services (Dependency Injection) ---
	var quoteSvc service.QuoteService = service.NewQuoteService(yahooClient)
	if cfg.Config.QuoteCache {
		ttl := time.Duration(cfg.Config.QuoteCacheTtlSeconds) * time.Second
		quoteSvc = service.NewCachedQuoteService(quoteSvc, ttl)
	}
	portfolioSvc := service.NewPortfolioService(quoteSvc)
	alertSvc := service.NewAlertService(quoteSvc)
	chartSvc := service.NewChartService(quoteSvc)

	// --- 3. Routes & Controllers ---
	api := r.Group("/api")
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(api)

		// Quote Endpoints
		controller.NewQuoteController(quoteSvc).RegisterRoutes(api)

		// Portfolio Endpoints
		controller.NewPortfolioController(portfolioSvc).RegisterRoutes(api)

		// Alert Endpoints
		controller.NewAlertController(alertSvc).RegisterRoutes(api)

		// Chart Endpoints
		controller.NewChartController(chartSvc).RegisterRoutes(api)
	}

	return r
}
