package upload_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// GetUploads godoc
// @Summary List uploads
// @Description Returns the current user's uploads, newest first, paginated.
// @Tags Uploads
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param store_id query string false "Filter by store"
// @Success 200 {object} models.ApiResponse{data=[]models.Upload}
// @Failure 500 {object} models.ApiResponse
// @Router /uploads [get]
func GetUploads(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	log.Printf("[upload.list] start user=%s", userID)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Where("user_id = ?", userID)
	if storeID := c.Query("store_id"); storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	var total int64
	if err := query.Model(&models.Upload{}).Count(&total).Error; err != nil {
		log.Printf("[upload.list] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch uploads"))
		return
	}

	var uploads []models.Upload
	if err := query.
		Order("upload_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&uploads).Error; err != nil {
		log.Printf("[upload.list] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch uploads"))
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Uploads fetched", uploads, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}
