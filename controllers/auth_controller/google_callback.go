// ════════════════════════════════════════════════════════════
// Path: controllers/auth_controller/google_callback.go
// Google OAuth Callback Handler
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/config"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/utils"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the callback from Google OAuth. Verifies the state token, exchanges the authorization code, retrieves user info, creates/updates the user in the database, issues a JWT cookie, and redirects the user back to the dashboard.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to dashboard after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Failure 401 {object} models.ApiResponse "Unauthorized or token exchange failure"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("[auth.google-callback] ERROR state mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("[auth.google-callback] ERROR no authorization code")
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("[auth.google-callback] ERROR exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	googleUser, err := fetchGoogleIdentity(c.Request.Context(), token)
	if err != nil {
		log.Printf("[auth.google-callback] ERROR identity: %v", err)
		redirectToFrontendWithError(c, "Failed to get user info")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}

	if googleID == "" {
		log.Printf("[auth.google-callback] ERROR no Google ID in response")
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}

	user, err := createOrUpdateUser(googleUser, googleID)
	if err != nil {
		log.Printf("[auth.google-callback] ERROR database: %v", err)
		redirectToFrontendWithError(c, fmt.Sprintf("Database error: %v", err))
		return
	}

	// Record login time
	now := time.Now().UTC()
	if err := config.Gorm.Model(user).Update("last_login_at", now).Error; err != nil {
		log.Printf("[auth.google-callback] failed to record login time: %v", err)
	}

	// Generate JWT token
	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		log.Printf("[auth.google-callback] ERROR jwt: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	// Set HTTP-only cookie with the token
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

	// Set temporary cookie with user data (for popup to read)
	userJSON, _ := json.Marshal(user.ToResponse())
	c.SetCookie(
		"user_data",
		string(userJSON),
		60, // 1 minute (just for transfer)
		"/",
		"",
		isProd,
		false, // NOT httpOnly (popup needs to read it)
	)

	log.Printf("[auth.google-callback] login successful: %s", user.Email)

	// Redirect to dashboard callback (NO token in URL)
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth-popup", frontendURL)

	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

// fetchGoogleIdentity resolves the signed-in Google account. The verified
// ID token is preferred; the userinfo endpoint is the fallback when the
// exchange response carried none.
func fetchGoogleIdentity(ctx context.Context, token *oauth2.Token) (*models.GoogleUserInfo, error) {
	var googleUser models.GoogleUserInfo

	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		if idToken, err := config.OIDCVerifier.Verify(ctx, rawIDToken); err != nil {
			log.Printf("[auth.google-callback] id_token verify failed, falling back to userinfo: %v", err)
		} else if err := idToken.Claims(&googleUser); err != nil {
			log.Printf("[auth.google-callback] id_token claims decode failed, falling back to userinfo: %v", err)
		} else {
			return &googleUser, nil
		}
	}

	client := config.GoogleOAuthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("userinfo request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("userinfo read: %w", err)
	}
	if err := json.Unmarshal(body, &googleUser); err != nil {
		return nil, fmt.Errorf("userinfo decode: %w", err)
	}
	return &googleUser, nil
}
