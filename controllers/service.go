// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	TitleFR       string  `json:"titleFr" binding:"required"`
	TitleEN       string  `json:"titleEn"`
	DescriptionFR string  `json:"descriptionFr"`
	DescriptionEN string  `json:"descriptionEn"`
	Price         float64 `json:"price" binding:"required,min=0"`
	Duration      int     `json:"duration" binding:"min=0"` // in minutes
	DisplayOrder  int     `json:"displayOrder"`
	IsBookable    *bool   `json:"isBookable"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	TitleFR       *string  `json:"titleFr"`
	TitleEN       *string  `json:"titleEn"`
	DescriptionFR *string  `json:"descriptionFr"`
	DescriptionEN *string  `json:"descriptionEn"`
	Price         *float64 `json:"price"`
	Duration      *int     `json:"duration"`
	DisplayOrder  *int     `json:"displayOrder"`
	IsActive      *bool    `json:"isActive"`
	IsBookable    *bool    `json:"isBookable"`
}

// CreateService creates a new service
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	duration := input.Duration
	if duration == 0 {
		duration = 60
	}

	service := models.Service{
		TitleFR:         input.TitleFR,
		TitleEN:         input.TitleEN,
		DescriptionFR:   input.DescriptionFR,
		DescriptionEN:   input.DescriptionEN,
		Price:           input.Price,
		DurationMinutes: duration,
		DisplayOrder:    input.DisplayOrder,
		IsActive:        true,
		IsBookable:      true,
	}
	if input.IsBookable != nil {
		service.IsBookable = *input.IsBookable
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves all services (back office view)
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("display_order ASC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetPublicServices retrieves active services for the marketing site
func GetPublicServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("is_active = ?", true).
		Order("display_order ASC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing service
	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.TitleFR != nil {
		service.TitleFR = *input.TitleFR
	}
	if input.TitleEN != nil {
		service.TitleEN = *input.TitleEN
	}
	if input.DescriptionFR != nil {
		service.DescriptionFR = *input.DescriptionFR
	}
	if input.DescriptionEN != nil {
		service.DescriptionEN = *input.DescriptionEN
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Duration != nil {
		service.DurationMinutes = *input.Duration
	}
	if input.DisplayOrder != nil {
		service.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}
	if input.IsBookable != nil {
		service.IsBookable = *input.IsBookable
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService soft deletes a service
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Where("id = ?", serviceUUID).Delete(&models.Service{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
