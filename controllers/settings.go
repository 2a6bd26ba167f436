// controllers/settings.go
package controllers

import (
	"errors"
	"net/http"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateSettingsInput struct {
	SiteName       *string       `json:"siteName"`
	ContactEmail   *string       `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone   *string       `json:"contactPhone"`
	Address        *string       `json:"address"`
	SocialLinks    *models.JSONB `json:"socialLinks"`
	BookingEnabled *bool         `json:"bookingEnabled"`
}

// loadSettings fetches the singleton settings row, creating it on first use
func loadSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := config.DB.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.SiteSettings{
		SiteName:       "ConsultPro",
		SocialLinks:    models.JSONB{},
		BookingEnabled: true,
	}
	if err := config.DB.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetPublicSettings exposes the subset of settings the marketing site needs
func GetPublicSettings(c *gin.Context) {
	settings, err := loadSettings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"siteName":       settings.SiteName,
		"contactEmail":   settings.ContactEmail,
		"contactPhone":   settings.ContactPhone,
		"address":        settings.Address,
		"socialLinks":    settings.SocialLinks,
		"bookingEnabled": settings.BookingEnabled,
	})
}

// GetSettings returns the full settings row for the back office
func GetSettings(c *gin.Context) {
	settings, err := loadSettings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings updates the singleton settings row
func UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	settings, err := loadSettings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	if input.SiteName != nil {
		settings.SiteName = *input.SiteName
	}
	if input.ContactEmail != nil {
		settings.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		settings.ContactPhone = *input.ContactPhone
	}
	if input.Address != nil {
		settings.Address = *input.Address
	}
	if input.SocialLinks != nil {
		settings.SocialLinks = *input.SocialLinks
	}
	if input.BookingEnabled != nil {
		settings.BookingEnabled = *input.BookingEnabled
	}

	if err := config.DB.Save(settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
