// controllers/chat.go
package controllers

import (
	"net/http"

	"consultpro-backend/services"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type ChatInput struct {
	Message string                 `json:"message" binding:"required"`
	History []services.ChatMessage `json:"history" binding:"omitempty,dive"`
}

// Chat forwards a visitor question to the hosted assistant
func Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Without an API key the assistant degrades to a canned answer
	if !services.ChatAvailable() {
		c.JSON(http.StatusOK, gin.H{"reply": services.ChatUnavailableMessage})
		return
	}

	reply, err := services.ChatReply(c.Request.Context(), input.Message, input.History)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Assistant request failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
