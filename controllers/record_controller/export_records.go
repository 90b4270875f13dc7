package record_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// ExportRecords godoc
// @Summary Export invoice records as CSV
// @Description Streams the user's invoice records as a CSV download. With include_analytics=true each row carries its rolling mean, volatility and spike annotation columns.
// @Tags Records
// @Produce text/csv
// @Security BearerAuth
// @Param store_id query string false "Filter by store"
// @Param category query string false "Filter by category"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param include_analytics query bool false "Append rolling/spike columns" default(false)
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} models.ApiResponse
// @Router /records/export [get]
func ExportRecords(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	includeAnalytics := c.Query("include_analytics") == "true"
	log.Printf("[record.export] start user=%s analytics=%v", userID, includeAnalytics)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Where("user_id = ?", userID)
	if storeID := c.Query("store_id"); storeID != "" && storeID != "all" {
		query = query.Where("store_id = ?", storeID)
	}

	var records []models.InvoiceRecord
	if err := query.Order("invoice_date ASC, id ASC").Find(&records).Error; err != nil {
		log.Printf("[record.export] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch records"))
		return
	}

	rows := make([]models.RawInvoiceRow, 0, len(records))
	for i := range records {
		rows = append(rows, records[i].ToRawRow())
	}
	lines := analytics.NormalizeAll(rows)
	lines = analytics.ApplyFilters(lines, models.AnalyticsFilters{
		Category:  c.Query("category"),
		StartDate: parseDate(c.Query("start_date")),
		EndDate:   parseDate(c.Query("end_date")),
	})

	if includeAnalytics {
		lines = analytics.RollingStats(lines, analytics.DefaultVolatilityWindow)
		lines = analytics.DetectSpikes(lines, analytics.DefaultSpikeThreshold)
	}

	out, err := analytics.ExportCSV(lines, includeAnalytics)
	if err != nil {
		log.Printf("[record.export] ERROR csv err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build export"))
		return
	}

	filename := fmt.Sprintf("sanpeggios-invoices-%s.csv", time.Now().Format("2006-01-02"))
	log.Printf("[record.export] done user=%s rows=%d bytes=%d", userID, len(lines), len(out))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", out)
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
