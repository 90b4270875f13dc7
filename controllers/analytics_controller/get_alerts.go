package analytics_controller

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/services"
)

// GetAlerts godoc
// @Summary Evaluate alerts
// @Description Runs the analytics pipeline and checks the result against the user's saved thresholds. With email enabled in the config, a digest is sent to every configured recipient.
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param store_id query string false "Scope to one store (default all)"
// @Success 200 {object} models.ApiResponse{data=[]models.Alert}
// @Failure 422 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/alerts [get]
func GetAlerts(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	log.Printf("[alerts.check] start user=%s", userID)

	cfg, err := loadAlertConfig(userID)
	if err != nil {
		log.Printf("[alerts.check] ERROR config err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load alert config"))
		return
	}

	result, err := runPipeline(c)
	if err != nil {
		respondPipelineError(c, "alerts.check", err)
		return
	}

	alerts := analytics.CheckAlerts(result, cfg)
	log.Printf("[alerts.check] done user=%s triggered=%d", userID, len(alerts))

	if cfg.EmailEnabled && len(alerts) > 0 && len(cfg.EmailRecipients) > 0 {
		go sendAlertDigest(c.Query("store_id"), cfg.EmailRecipients, alerts)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alerts evaluated", alerts))
}

// sendAlertDigest emails the triggered alerts to every recipient. Runs off
// the request goroutine; failures are logged, never surfaced.
func sendAlertDigest(storeID string, recipients []string, alerts []models.Alert) {
	if os.Getenv("RESEND_API_KEY") == "" {
		log.Printf("[alerts.digest] RESEND_API_KEY not set, skipping email")
		return
	}

	storeName := storeID
	if storeName == "" || storeName == "all" {
		storeName = "All Stores"
	}

	client := services.NewResendClient()
	for _, recipient := range recipients {
		err := client.SendAlertDigestEmail(services.AlertDigestEmailData{
			Recipient: recipient,
			StoreName: storeName,
			RunDate:   time.Now().Format("January 2, 2006"),
			Alerts:    alerts,
		})
		if err != nil {
			log.Printf("[alerts.digest] ERROR send to=%s err=%v", recipient, err)
		}
	}
}
