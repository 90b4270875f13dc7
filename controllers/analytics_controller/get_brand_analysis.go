package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetBrandAnalysis godoc
// @Summary Per-brand metrics
// @Description Returns spend, market share, price positioning, loyalty and switching rates per brand.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Success 200 {object} models.ApiResponse{data=map[string]models.BrandMetric}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/brands [get]
func GetBrandAnalysis(c *gin.Context) {
	log.Printf("[analytics.brands] start")

	lines, err := loadLines(c)
	if err != nil {
		log.Printf("[analytics.brands] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load records"))
		return
	}

	brands := analytics.AnalyzeBrands(lines)
	log.Printf("[analytics.brands] done brands=%d", len(brands))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand analysis computed", brands))
}
