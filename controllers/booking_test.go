package controllers_test

import (
	"net/http"
	"testing"

	"consultpro-backend/config"
	"consultpro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingValidation(t *testing.T) {
	router := setupTest(t)

	// Missing clientEmail is rejected before anything is written
	w := performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName": "Alice",
		"topic":      "Tax advice",
		"date":       "2031-06-10",
		"time":       "10:00",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	config.DB.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// Malformed date
	w = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Alice",
		"clientEmail": "alice@example.com",
		"topic":       "Tax advice",
		"date":        "10/06/2031",
		"time":        "10:00",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Neither topic nor service
	w = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Alice",
		"clientEmail": "alice@example.com",
		"date":        "2031-06-10",
		"time":        "10:00",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBooking(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Alice",
		"clientEmail": "alice@example.com",
		"topic":       "Tax advice",
		"date":        "2031-06-10",
		"time":        "10:00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var booking models.Booking
	require.NoError(t, config.DB.First(&booking).Error)
	assert.Equal(t, "pending", booking.Status)
	assert.Equal(t, "unpaid", booking.PaymentStatus)
	assert.Equal(t, 60, booking.DurationMinutes)
	assert.Equal(t, "alice@example.com", booking.ClientEmail)
}

func TestBookingSlotConflict(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Alice",
		"clientEmail": "alice@example.com",
		"topic":       "Tax advice",
		"date":        "2031-06-10",
		"time":        "10:00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Overlapping slot is rejected
	w = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Bob",
		"clientEmail": "bob@example.com",
		"topic":       "Legal advice",
		"date":        "2031-06-10",
		"time":        "10:30",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// A later slot the same day is fine
	w = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Bob",
		"clientEmail": "bob@example.com",
		"topic":       "Legal advice",
		"date":        "2031-06-10",
		"time":        "11:00",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDeleteBooking(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "admin@example.com")

	// Deleting a nonexistent booking returns 404, not 200
	w := performRequest(router, http.MethodDelete, "/api/bookings/"+uuid.NewString(), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Alice",
		"clientEmail": "alice@example.com",
		"topic":       "Tax advice",
		"date":        "2031-06-10",
		"time":        "10:00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, config.DB.First(&booking).Error)

	w = performRequest(router, http.MethodDelete, "/api/bookings/"+booking.ID.String(), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateBooking(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "admin@example.com")

	w := performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Alice",
		"clientEmail": "alice@example.com",
		"topic":       "Tax advice",
		"date":        "2031-06-10",
		"time":        "10:00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, config.DB.First(&booking).Error)

	w = performRequest(router, http.MethodPut, "/api/bookings/"+booking.ID.String(), gin.H{
		"status": "confirmed",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, config.DB.First(&booking, "id = ?", booking.ID).Error)
	assert.Equal(t, "confirmed", booking.Status)

	// Invalid status value
	w = performRequest(router, http.MethodPut, "/api/bookings/"+booking.ID.String(), gin.H{
		"status": "done",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingCalendarEventNotConnected(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "admin@example.com")

	w := performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Alice",
		"clientEmail": "alice@example.com",
		"topic":       "Tax advice",
		"date":        "2031-06-10",
		"time":        "10:00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, config.DB.First(&booking).Error)

	// No Google token stored
	w = performRequest(router, http.MethodPost, "/api/bookings/"+booking.ID.String()+"/calendar-event", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Google Calendar not connected")
}
