package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetLifecycle godoc
// @Summary Product lifecycle buckets
// @Description Buckets every product as new, growing, mature, declining or at discontinuation risk based on its ordering cadence.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Success 200 {object} models.ApiResponse{data=models.LifecycleAnalysis}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/lifecycle [get]
func GetLifecycle(c *gin.Context) {
	log.Printf("[analytics.lifecycle] start")

	lines, err := loadLines(c)
	if err != nil {
		log.Printf("[analytics.lifecycle] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load records"))
		return
	}

	metrics := analytics.AnalyzeProductPerformance(lines, time.Now())
	lifecycle := analytics.AnalyzeProductLifecycle(metrics, time.Now())
	log.Printf("[analytics.lifecycle] done new=%d growing=%d declining=%d risk=%d",
		len(lifecycle.NewProducts), len(lifecycle.GrowingProducts),
		len(lifecycle.DecliningProducts), len(lifecycle.DiscontinuedRisk))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Lifecycle analysis computed", lifecycle))
}
