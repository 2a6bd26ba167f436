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

func TestPublicServicesListsOnlyActive(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "owner@example.com")

	w := performRequest(router, http.MethodPost, "/api/services", gin.H{
		"titleFr":      "Conseil fiscal",
		"titleEn":      "Tax advisory",
		"price":        150,
		"duration":     60,
		"displayOrder": 2,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = performRequest(router, http.MethodPost, "/api/services", gin.H{
		"titleFr":      "Audit",
		"price":        500,
		"duration":     120,
		"displayOrder": 1,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var hidden models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hidden))

	// Deactivate the audit service
	isActive := false
	w = performRequest(router, http.MethodPut, "/api/services/"+hidden.ID.String(), gin.H{
		"isActive": isActive,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/api/public/services", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var public []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	require.Len(t, public, 1)
	assert.Equal(t, "Conseil fiscal", public[0].TitleFR)
}

func TestBookingWithService(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "owner@example.com")

	w := performRequest(router, http.MethodPost, "/api/services", gin.H{
		"titleFr":  "Conseil fiscal",
		"price":    150,
		"duration": 90,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var service models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &service))

	// Topic and duration default from the service
	w = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Alice",
		"clientEmail": "alice@example.com",
		"serviceId":   service.ID,
		"date":        "2031-06-10",
		"time":        "10:00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, "Conseil fiscal", booking.Topic)
	assert.Equal(t, 90, booking.DurationMinutes)

	// A deactivated service cannot be booked
	isActive := false
	w = performRequest(router, http.MethodPut, "/api/services/"+service.ID.String(), gin.H{
		"isActive": isActive,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Bob",
		"clientEmail": "bob@example.com",
		"serviceId":   service.ID,
		"date":        "2031-06-11",
		"time":        "10:00",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
