package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetProductPerformance godoc
// @Summary Per-product performance metrics
// @Description Rolls the user's records up per product: spend, quantity, order cadence, price change history and activity status.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Success 200 {object} models.ApiResponse{data=map[string]models.ProductMetric}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/products [get]
func GetProductPerformance(c *gin.Context) {
	log.Printf("[analytics.products] start")

	lines, err := loadLines(c)
	if err != nil {
		log.Printf("[analytics.products] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load records"))
		return
	}

	metrics := analytics.AnalyzeProductPerformance(lines, time.Now())
	log.Printf("[analytics.products] done products=%d", len(metrics))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product performance computed", metrics))
}
