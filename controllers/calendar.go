// controllers/calendar.go
package controllers

import (
	"net/http"

	"consultpro-backend/config"
	"consultpro-backend/services"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// ConnectCalendar returns the Google consent URL for the current user
func ConnectCalendar(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	cfg, err := services.GoogleOAuthConfig()
	if err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Google Calendar is not configured")
		return
	}

	// The user ID rides along as the OAuth state so the callback knows
	// which account to attach the token to
	url := cfg.AuthCodeURL(userID.(string), oauth2.AccessTypeOffline, oauth2.ApprovalForce)

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// CalendarCallback exchanges the OAuth code and stores the token
func CalendarCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing authorization code")
		return
	}

	userUUID, err := uuid.Parse(c.Query("state"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid state parameter")
		return
	}

	cfg, err := services.GoogleOAuthConfig()
	if err != nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Google Calendar is not configured")
		return
	}

	token, err := cfg.Exchange(c.Request.Context(), code)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to exchange authorization code")
		return
	}

	if err := services.SaveGoogleToken(config.DB, userUUID, token); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Google Calendar connected"})
}

// CalendarStatus reports whether a Google account is connected
func CalendarStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"connected": services.CalendarConnected(config.DB)})
}
