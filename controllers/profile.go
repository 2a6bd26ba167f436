package controllers

import (
	"net/http"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	CompanySiret   string `json:"companySiret"`
	VatNumber      string `json:"vatNumber"`
}

func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":           user.Name,
		"email":          user.Email,
		"phone":          user.Phone,
		"companyName":    user.CompanyName,
		"companyAddress": user.CompanyAddress,
		"companySiret":   user.CompanySiret,
		"vatNumber":      user.VatNumber,
	})
}

func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.CompanySiret != "" && !utils.ValidateSiret(input.CompanySiret) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid SIRET number")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	// Update fields
	user.Name = input.Name
	user.Phone = input.Phone
	user.CompanyName = input.CompanyName
	user.CompanyAddress = input.CompanyAddress
	user.CompanySiret = input.CompanySiret
	user.VatNumber = input.VatNumber

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
