package analytics_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetAlertConfig godoc
// @Summary Get alert thresholds
// @Description Returns the user's saved alert thresholds, or the defaults when nothing was saved yet.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AlertConfig}
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/alerts/config [get]
func GetAlertConfig(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	log.Printf("[alerts.config-get] start user=%s", userID)

	cfg, err := loadAlertConfig(userID)
	if err != nil {
		log.Printf("[alerts.config-get] ERROR redis err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load alert config"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alert config fetched", cfg))
}

// loadAlertConfig reads the user's thresholds from Redis, falling back to
// the defaults when no config was saved or the stored blob is stale.
func loadAlertConfig(userID string) (models.AlertConfig, error) {
	raw, err := config.RedisClient.Get(config.Ctx, alertConfigKey(userID)).Result()
	if err == redis.Nil {
		return models.DefaultAlertConfig(), nil
	}
	if err != nil {
		return models.AlertConfig{}, err
	}

	var cfg models.AlertConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		log.Printf("[alerts.config-get] WARN corrupt config user=%s, using defaults", userID)
		return models.DefaultAlertConfig(), nil
	}
	return cfg, nil
}
