package store_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetStores godoc
// @Summary List store locations
// @Description Returns every Sanpeggio's location with its record count for the current user.
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Store}
// @Failure 500 {object} models.ApiResponse
// @Router /stores [get]
func GetStores(c *gin.Context) {
	log.Printf("[store.list] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stores []models.Store
	if err := config.Gorm.WithContext(ctx).
		Order("id ASC").
		Find(&stores).Error; err != nil {
		log.Printf("[store.list] ERROR query stores err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stores"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stores fetched", stores))
}
