package analytics_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetForecast godoc
// @Summary Monthly spend forecast
// @Description Aggregates spend into a monthly series and extends it with a linear regression forecast.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Param months query int false "Future months to forecast" default(3)
// @Success 200 {object} models.ApiResponse{data=[]models.ForecastPoint}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/forecast [get]
func GetForecast(c *gin.Context) {
	log.Printf("[analytics.forecast] start")

	months := 3
	if m, err := strconv.Atoi(c.Query("months")); err == nil && m > 0 && m <= 24 {
		months = m
	}

	lines, err := loadLines(c)
	if err != nil {
		log.Printf("[analytics.forecast] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load records"))
		return
	}

	historical := analytics.PrepareForecastData(lines)
	series := analytics.ForecastSeries(historical, months)
	log.Printf("[analytics.forecast] done historical=%d total=%d", len(historical), len(series))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Forecast computed", series))
}
