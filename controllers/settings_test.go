package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSingleton(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "owner@example.com")

	// First read creates the row with defaults
	w := performRequest(router, http.MethodGet, "/api/settings", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = performRequest(router, http.MethodPut, "/api/settings", gin.H{
		"siteName":     "Durand Conseil",
		"contactEmail": "contact@durand-conseil.fr",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// The public surface sees the update
	w = performRequest(router, http.MethodGet, "/api/public/settings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Durand Conseil", body["siteName"])
}

func TestBookingDisabledViaSettings(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "owner@example.com")

	bookingEnabled := false
	w := performRequest(router, http.MethodPut, "/api/settings", gin.H{
		"bookingEnabled": bookingEnabled,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = performRequest(router, http.MethodPost, "/api/bookings", gin.H{
		"clientName":  "Alice",
		"clientEmail": "alice@example.com",
		"topic":       "Tax advice",
		"date":        "2031-06-10",
		"time":        "10:00",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
