package analytics_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// UpdateAlertConfig godoc
// @Summary Update alert thresholds
// @Description Saves the user's alert thresholds. All three thresholds must be positive; email recipients are only kept when email is enabled.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param config body models.AlertConfig true "New thresholds"
// @Success 200 {object} models.ApiResponse{data=models.AlertConfig}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/alerts/config [put]
func UpdateAlertConfig(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	log.Printf("[alerts.config-update] start user=%s", userID)

	var cfg models.AlertConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid alert config payload"))
		return
	}

	if cfg.SpikeZThreshold <= 0 || cfg.BudgetVarianceThreshold <= 0 || cfg.ConcentrationThreshold <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Thresholds must be positive"))
		return
	}
	if !cfg.EmailEnabled {
		cfg.EmailRecipients = []string{}
	}
	if cfg.EmailRecipients == nil {
		cfg.EmailRecipients = []string{}
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		log.Printf("[alerts.config-update] ERROR marshal err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save alert config"))
		return
	}

	if err := config.RedisClient.Set(config.Ctx, alertConfigKey(userID), raw, 0).Err(); err != nil {
		log.Printf("[alerts.config-update] ERROR redis err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save alert config"))
		return
	}

	log.Printf("[alerts.config-update] done user=%s", userID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alert config saved", cfg))
}
