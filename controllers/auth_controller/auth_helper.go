package auth_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func createOrUpdateUser(
	googleUser *models.GoogleUserInfo,
	googleID string,
) (*models.User, error) {
	var user models.User

	// Try to find existing user by email
	result := config.Gorm.
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				Email:    googleUser.Email,
				Name:     googleUser.Name,
				GoogleID: &googleID,
				Provider: "google",
				Avatar:   &googleUser.Picture,
				Role:     "viewer",
			}

			if err := config.Gorm.Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar": googleUser.Picture,
	}

	// Only set name if user never had one
	if user.Name == "" {
		updates["name"] = googleUser.Name
	}

	// Attach Google account if not already linked
	if user.GoogleID == nil || *user.GoogleID == "" {
		updates["google_id"] = googleID
	}

	if err := config.Gorm.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Sync struct with DB updates
	if user.Name == "" {
		user.Name = googleUser.Name
	}
	user.Avatar = &googleUser.Picture

	return &user, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
