package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetSeasonality godoc
// @Summary Seasonal ordering patterns
// @Description Buckets each product's quantity, orders and spend by calendar month and scores how seasonal its demand is.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Success 200 {object} models.ApiResponse{data=map[string]models.ProductSeasonality}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/seasonality [get]
func GetSeasonality(c *gin.Context) {
	log.Printf("[analytics.seasonality] start")

	lines, err := loadLines(c)
	if err != nil {
		log.Printf("[analytics.seasonality] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load records"))
		return
	}

	patterns := analytics.DetectSeasonalPatterns(lines)
	log.Printf("[analytics.seasonality] done products=%d", len(patterns))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Seasonality computed", patterns))
}
