package record_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetRecords godoc
// @Summary List invoice records
// @Description Returns the current user's invoice records, newest invoice first, paginated and filterable by store, category, vendor and date range.
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Param store_id query string false "Filter by store"
// @Param category query string false "Filter by category"
// @Param vendor query string false "Filter by vendor"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.InvoiceRecord}
// @Failure 500 {object} models.ApiResponse
// @Router /records [get]
func GetRecords(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	log.Printf("[record.list] start user=%s", userID)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 50
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Where("user_id = ?", userID)
	if storeID := c.Query("store_id"); storeID != "" && storeID != "all" {
		query = query.Where("store_id = ?", storeID)
	}
	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if vendor := c.Query("vendor"); vendor != "" && vendor != "all" {
		query = query.Where("vendor = ?", vendor)
	}
	if start := c.Query("start_date"); start != "" {
		query = query.Where("invoice_date >= ?", start)
	}
	if end := c.Query("end_date"); end != "" {
		query = query.Where("invoice_date <= ?", end)
	}

	var total int64
	if err := query.Model(&models.InvoiceRecord{}).Count(&total).Error; err != nil {
		log.Printf("[record.list] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch records"))
		return
	}

	var records []models.InvoiceRecord
	if err := query.
		Order("invoice_date DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error; err != nil {
		log.Printf("[record.list] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch records"))
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Records fetched", records, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}
