package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/controllers/upload_controller"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
)

func SetupUploadRoutes(rg *gin.RouterGroup) {
	upload := rg.Group("/uploads")
	upload.Use(middleware.AuthMiddleware())
	{
		upload.POST("", upload_controller.UploadInvoices)
		upload.GET("", upload_controller.GetUploads)
		upload.DELETE("/:id", upload_controller.DeleteUpload)
	}
}
