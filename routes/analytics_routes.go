package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/controllers/analytics_controller"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware())
	analytics.Use(middleware.RateLimiter(100, time.Minute))
	{
		// Pipeline
		analytics.GET("/run", analytics_controller.RunAnalytics)
		analytics.GET("/forecast", analytics_controller.GetForecast)
		analytics.GET("/report", analytics_controller.DownloadReportPDF)

		// Product intelligence
		analytics.GET("/products", analytics_controller.GetProductPerformance)
		analytics.GET("/abc", analytics_controller.GetABCAnalysis)
		analytics.GET("/brands", analytics_controller.GetBrandAnalysis)
		analytics.GET("/pack-sizes", analytics_controller.GetPackSizes)
		analytics.GET("/substitutions", analytics_controller.GetSubstitutions)
		analytics.GET("/seasonality", analytics_controller.GetSeasonality)
		analytics.GET("/lifecycle", analytics_controller.GetLifecycle)

		// Alerts
		analytics.GET("/alerts", analytics_controller.GetAlerts)
		analytics.GET("/alerts/config", analytics_controller.GetAlertConfig)
		analytics.PUT("/alerts/config", analytics_controller.UpdateAlertConfig)
	}
}
