package upload_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	analytics_cache "github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/cache"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/middleware"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// DeleteUpload godoc
// @Summary Delete an upload and its records
// @Description Removes an upload and every invoice record it created. Only the uploading user can delete it.
// @Tags Uploads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Upload ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid upload ID"
// @Failure 404 {object} models.ApiResponse "Upload not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /uploads/:id [delete]
func DeleteUpload(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	uploadID := c.Param("id")
	log.Printf("[upload.delete] request upload=%s user=%s", uploadID, userID)

	if _, err := uuid.Parse(uploadID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid upload ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var upload models.Upload
	if err := config.Gorm.WithContext(ctx).
		Where("id = ? AND user_id = ?", uploadID, userID).
		First(&upload).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Upload not found"))
			return
		}
		log.Printf("[upload.delete] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("upload_id = ?", upload.ID).Delete(&models.InvoiceRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&upload).Error
	})
	if err != nil {
		log.Printf("[upload.delete] ERROR delete err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete upload"))
		return
	}

	analytics_cache.Invalidate()

	log.Printf("[upload.delete] deleted upload=%s records=%d", upload.ID, upload.NewRecords)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Upload deleted", gin.H{
		"upload_id":       upload.ID,
		"records_removed": upload.NewRecords,
	}))
}
