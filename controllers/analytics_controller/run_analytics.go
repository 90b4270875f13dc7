package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// RunAnalytics godoc
// @Summary Run the full analytics pipeline
// @Description Runs normalization, rolling statistics, spike detection, budget variance, supply concentration and forecast preparation over the user's records and returns the assembled result.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Param window query int false "Volatility window in days" default(30)
// @Param threshold query number false "Spike z-score threshold" default(2)
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param category query string false "Filter by category"
// @Param vendor query string false "Filter by vendor"
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsResult}
// @Failure 422 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/run [get]
func RunAnalytics(c *gin.Context) {
	log.Printf("[analytics.run] start")

	result, err := runPipeline(c)
	if err != nil {
		respondPipelineError(c, "analytics.run", err)
		return
	}

	log.Printf("[analytics.run] done records=%d spikes=%d",
		result.Summary.TotalRecords, result.Summary.SpikeCount)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics computed", result))
}
