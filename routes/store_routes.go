package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/controllers/store_controller"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
)

func SetupStoreRoutes(rg *gin.RouterGroup) {
	store := rg.Group("/stores")
	store.Use(middleware.AuthMiddleware())
	{
		store.GET("", store_controller.GetStores)
		store.GET("/summary", store_controller.GetStoreSummary)
	}
}
