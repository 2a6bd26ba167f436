// controllers/content.go
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

// CreateContentBlockInput defines the expected JSON structure for a content block
type CreateContentBlockInput struct {
	Slug         string `json:"slug" binding:"required"`
	Page         string `json:"page"`
	TitleFR      string `json:"titleFr"`
	TitleEN      string `json:"titleEn"`
	BodyFR       string `json:"bodyFr"`
	BodyEN       string `json:"bodyEn"`
	DisplayOrder int    `json:"displayOrder"`
}

// UpdateContentBlockInput defines the expected JSON structure for updating a block
type UpdateContentBlockInput struct {
	Page         *string `json:"page"`
	TitleFR      *string `json:"titleFr"`
	TitleEN      *string `json:"titleEn"`
	BodyFR       *string `json:"bodyFr"`
	BodyEN       *string `json:"bodyEn"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// GetPublicContent lists active content blocks for the marketing site
func GetPublicContent(c *gin.Context) {
	query := config.ContentDB.Where("is_active = ?", true).Order("display_order ASC")
	if page := c.Query("page"); page != "" {
		query = query.Where("page = ?", page)
	}

	var blocks []models.ContentBlock
	if err := query.Find(&blocks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve content")
		return
	}

	c.JSON(http.StatusOK, blocks)
}

// GetContentBlocks lists all content blocks for the back office
func GetContentBlocks(c *gin.Context) {
	var blocks []models.ContentBlock
	if err := config.ContentDB.Order("page ASC, display_order ASC").Find(&blocks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve content")
		return
	}

	c.JSON(http.StatusOK, blocks)
}

// CreateContentBlock creates a new content block
func CreateContentBlock(c *gin.Context) {
	var input CreateContentBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Slug must be unique
	var existing models.ContentBlock
	if err := config.ContentDB.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Content block with this slug already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	page := input.Page
	if page == "" {
		page = "home"
	}

	block := models.ContentBlock{
		ID:           uuid.New(),
		Slug:         input.Slug,
		Page:         page,
		TitleFR:      input.TitleFR,
		TitleEN:      input.TitleEN,
		BodyFR:       input.BodyFR,
		BodyEN:       input.BodyEN,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
	}

	if err := config.ContentDB.Create(&block).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create content block")
		return
	}

	c.JSON(http.StatusCreated, block)
}

// UpdateContentBlock updates an existing content block
func UpdateContentBlock(c *gin.Context) {
	blockUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid content block ID format")
		return
	}

	var input UpdateContentBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var block models.ContentBlock
	if err := config.ContentDB.Where("id = ?", blockUUID).First(&block).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Content block not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Page != nil {
		block.Page = *input.Page
	}
	if input.TitleFR != nil {
		block.TitleFR = *input.TitleFR
	}
	if input.TitleEN != nil {
		block.TitleEN = *input.TitleEN
	}
	if input.BodyFR != nil {
		block.BodyFR = *input.BodyFR
	}
	if input.BodyEN != nil {
		block.BodyEN = *input.BodyEN
	}
	if input.DisplayOrder != nil {
		block.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		block.IsActive = *input.IsActive
	}

	if err := config.ContentDB.Save(&block).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update content block")
		return
	}

	c.JSON(http.StatusOK, block)
}

// DeleteContentBlock removes a content block
func DeleteContentBlock(c *gin.Context) {
	blockUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid content block ID format")
		return
	}

	result := config.ContentDB.Where("id = ?", blockUUID).Delete(&models.ContentBlock{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete content block")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Content block not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content block deleted successfully"})
}
