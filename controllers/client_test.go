package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"consultpro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCRUD(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "owner@example.com")

	// Create
	w := performRequest(router, http.MethodPost, "/api/clients", gin.H{
		"name":    "Acme SARL",
		"company": "Acme",
		"email":   "acme@example.com",
		"siret":   "44306184100047",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var client models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))
	assert.True(t, client.IsActive)

	// Duplicate email for the same owner
	w = performRequest(router, http.MethodPost, "/api/clients", gin.H{
		"name":  "Acme again",
		"email": "acme@example.com",
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Update
	w = performRequest(router, http.MethodPut, "/api/clients/"+client.ID.String(), gin.H{
		"notes": "Prefers morning calls",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// List
	w = performRequest(router, http.MethodGet, "/api/clients", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var clients []models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clients))
	assert.Len(t, clients, 1)

	// Delete
	w = performRequest(router, http.MethodDelete, "/api/clients/"+client.ID.String(), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/api/clients/"+client.ID.String(), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientOwnerScope(t *testing.T) {
	router := setupTest(t)
	_, tokenA := registerTestUser(t, router, "owner-a@example.com")
	_, tokenB := registerTestUser(t, router, "owner-b@example.com")

	clientID := createTestClient(t, router, tokenA, "acme@example.com")

	// B gets a 404, not a 403, for A's client
	w := performRequest(router, http.MethodGet, "/api/clients/"+clientID.String(), nil, tokenB)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// B can reuse the same client email
	w = performRequest(router, http.MethodPost, "/api/clients", gin.H{
		"name":  "Acme for B",
		"email": "acme@example.com",
	}, tokenB)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Unknown id
	w = performRequest(router, http.MethodGet, "/api/clients/"+uuid.NewString(), nil, tokenA)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
