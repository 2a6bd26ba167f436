package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"consultpro-backend/config"
	"consultpro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentBlocks(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "owner@example.com")

	w := performRequest(router, http.MethodPost, "/api/content", gin.H{
		"slug":    "home-hero",
		"page":    "home",
		"titleFr": "Votre partenaire conseil",
		"titleEn": "Your consulting partner",
		"bodyFr":  "Nous accompagnons les PME.",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The uuid key survives the round trip through the char(36) column
	var created models.ContentBlock
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	var stored models.ContentBlock
	require.NoError(t, config.ContentDB.First(&stored, "slug = ?", "home-hero").Error)
	assert.Equal(t, created.ID, stored.ID)

	// Duplicate slug
	w = performRequest(router, http.MethodPost, "/api/content", gin.H{
		"slug": "home-hero",
		"page": "home",
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(router, http.MethodPost, "/api/content", gin.H{
		"slug": "about-intro",
		"page": "about",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	// Public listing filters by page
	w = performRequest(router, http.MethodGet, "/api/public/content?page=home", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var blocks []models.ContentBlock
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blocks))
	require.Len(t, blocks, 1)
	assert.Equal(t, "home-hero", blocks[0].Slug)
}
