package auth_controller

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/utils"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Local email/password login
// @Description Authenticates a locally provisioned user (seeded admin) with email and bcrypt-hashed password, issues a JWT cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	log.Printf("[auth.login] attempt for %s", req.Email)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Gorm.WithContext(ctx).
		Where("email = ? AND provider = ?", req.Email, "local").
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[auth.login] ERROR database: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if user.PasswordHash == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("[auth.login] password mismatch for %s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	now := time.Now().UTC()
	if err := config.Gorm.WithContext(ctx).Model(&user).Update("last_login_at", now).Error; err != nil {
		log.Printf("[auth.login] failed to record login time: %v", err)
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		log.Printf("[auth.login] ERROR jwt: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		jwtToken,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true, // httpOnly
	)

	log.Printf("[auth.login] login successful: %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", user.ToResponse()))
}
