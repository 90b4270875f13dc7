package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/controllers/record_controller"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
)

func SetupRecordRoutes(rg *gin.RouterGroup) {
	record := rg.Group("/records")
	record.Use(middleware.AuthMiddleware())
	{
		record.GET("", record_controller.GetRecords)
		record.GET("/export", record_controller.ExportRecords)
	}
}
