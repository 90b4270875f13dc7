package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetABCAnalysis godoc
// @Summary Pareto (ABC) spend classification
// @Description Ranks products by spend and assigns A (top 80%), B (next 15%) and C (tail) tiers with cumulative percentages.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Success 200 {object} models.ApiResponse{data=models.ABCAnalysis}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/abc [get]
func GetABCAnalysis(c *gin.Context) {
	log.Printf("[analytics.abc] start")

	lines, err := loadLines(c)
	if err != nil {
		log.Printf("[analytics.abc] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load records"))
		return
	}

	metrics := analytics.AnalyzeProductPerformance(lines, time.Now())
	abc := analytics.PerformABCAnalysis(metrics)
	log.Printf("[analytics.abc] done a=%d b=%d c=%d",
		abc.Summary.AItems, abc.Summary.BItems, abc.Summary.CItems)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "ABC analysis computed", abc))
}
