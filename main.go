// @title Sanpeggio's PFG Analytics API
// @version 1.0
// @description Invoice analytics backend for Sanpeggio's Pizza purchasing from Performance Food Group
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	_ "github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/docs"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	// ✅ Configure CORS for all content types including CSV and PDF downloads
	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	routes.SetupAuthRoutes(api)
	routes.SetupStoreRoutes(api)
	routes.SetupUploadRoutes(api)
	routes.SetupRecordRoutes(api)
	routes.SetupAnalyticsRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
