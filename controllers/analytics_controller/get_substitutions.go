package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetSubstitutions godoc
// @Summary Product substitution opportunities
// @Description Finds near-identical products in the same category where a cheaper alternative exists, with per-unit and annualized savings.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Success 200 {object} models.ApiResponse{data=[]models.Substitution}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/substitutions [get]
func GetSubstitutions(c *gin.Context) {
	log.Printf("[analytics.substitutions] start")

	lines, err := loadLines(c)
	if err != nil {
		log.Printf("[analytics.substitutions] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load records"))
		return
	}

	metrics := analytics.AnalyzeProductPerformance(lines, time.Now())
	subs := analytics.FindSubstitutionOpportunities(metrics)
	log.Printf("[analytics.substitutions] done opportunities=%d", len(subs))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Substitution opportunities computed", subs))
}
