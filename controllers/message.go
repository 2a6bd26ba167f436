// controllers/message.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/services"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateContactMessageInput defines the expected JSON structure for the
// public contact form
type CreateContactMessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// CreateContactMessage stores a contact form submission and notifies the firm
func CreateContactMessage(c *gin.Context) {
	var input CreateContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	message := models.ContactMessage{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := config.DB.Create(&message).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save message")
		return
	}

	// Best-effort notification email to the firm
	var settings models.SiteSettings
	if err := config.DB.First(&settings).Error; err == nil {
		if err := services.NewMailer().SendContactNotification(&message, settings.ContactEmail); err != nil {
			log.Printf("Failed to send contact notification: %v", err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message received"})
}

// GetMessages retrieves contact messages for the back office
func GetMessages(c *gin.Context) {
	query := config.DB.Order("created_at DESC")
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

// MarkMessageRead flags a contact message as read
func MarkMessageRead(c *gin.Context) {
	messageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	var message models.ContactMessage
	if err := config.DB.Where("id = ?", messageUUID).First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Message not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	message.IsRead = true
	if err := config.DB.Save(&message).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update message")
		return
	}

	c.JSON(http.StatusOK, message)
}

// DeleteMessage removes a contact message
func DeleteMessage(c *gin.Context) {
	messageUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid message ID format")
		return
	}

	result := config.DB.Where("id = ?", messageUUID).Delete(&models.ContactMessage{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete message")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Message not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
