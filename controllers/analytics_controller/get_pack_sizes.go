package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetPackSizes godoc
// @Summary Pack size efficiency
// @Description Groups spend by category and pack size and scores each format by cost per unit, surfacing cheaper pack options.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Success 200 {object} models.ApiResponse{data=map[string]models.PackSizeMetric}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/pack-sizes [get]
func GetPackSizes(c *gin.Context) {
	log.Printf("[analytics.pack-sizes] start")

	lines, err := loadLines(c)
	if err != nil {
		log.Printf("[analytics.pack-sizes] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load records"))
		return
	}

	packs := analytics.AnalyzePackSizes(lines)
	log.Printf("[analytics.pack-sizes] done groups=%d", len(packs))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Pack size analysis computed", packs))
}
