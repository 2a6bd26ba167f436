package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"consultpro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactForm(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "owner@example.com")

	// Missing message body
	w := performRequest(router, http.MethodPost, "/api/contact", gin.H{
		"name":  "Bob",
		"email": "bob@example.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, http.MethodPost, "/api/contact", gin.H{
		"name":    "Bob",
		"email":   "bob@example.com",
		"subject": "Question about pricing",
		"message": "How much is a consulting day?",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Inbox shows the unread message
	w = performRequest(router, http.MethodGet, "/api/messages?unread=true", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []models.ContactMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.False(t, messages[0].IsRead)

	// Mark read, the unread filter is now empty
	w = performRequest(router, http.MethodPatch, "/api/messages/"+messages[0].ID.String()+"/read", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/api/messages?unread=true", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	messages = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Empty(t, messages)
}

func TestMessagesRequireAuth(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, http.MethodGet, "/api/messages", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
