package store_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// StoreSummary is one store's record footprint for the current user.
type StoreSummary struct {
	StoreID     string  `json:"store_id"`
	StoreName   string  `json:"store_name"`
	RecordCount int64   `json:"record_count"`
	TotalSpend  float64 `json:"total_spend"`
	UploadCount int64   `json:"upload_count"`
}

// GetStoreSummary godoc
// @Summary Per-store record summary
// @Description Returns record counts, spend and upload counts per store for the current user.
// @Tags Stores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]StoreSummary}
// @Failure 500 {object} models.ApiResponse
// @Router /stores/summary [get]
func GetStoreSummary(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	log.Printf("[store.summary] start user=%s", userID)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var summaries []StoreSummary
	if err := config.Gorm.WithContext(ctx).
		Raw(`
			SELECT
				s.id AS store_id,
				s.name AS store_name,
				COUNT(r.id) AS record_count,
				COALESCE(SUM(r.extended_price), 0)::float8 AS total_spend,
				COUNT(DISTINCT r.upload_id) AS upload_count
			FROM stores s
			LEFT JOIN invoice_records r ON r.store_id = s.id AND r.user_id = ?
			GROUP BY s.id, s.name
			ORDER BY s.id ASC
		`, userID).
		Scan(&summaries).Error; err != nil {
		log.Printf("[store.summary] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch store summary"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Store summary fetched", summaries))
}
