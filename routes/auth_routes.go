package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/controllers/auth_controller"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
)

func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	auth.GET("/google/login", auth_controller.GoogleLogin)
	auth.GET("/google/callback", auth_controller.GoogleCallback)
	auth.POST("/login", auth_controller.Login)
	auth.POST("/logout", auth_controller.Logout)

	// ════════════════════════════════════════════════════════════
	// Protected Routes
	// ════════════════════════════════════════════════════════════
	protected := auth.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", auth_controller.GetMe)
	}
}
