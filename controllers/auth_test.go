package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	router := setupTest(t)

	// Successful registration
	w := performRequest(router, http.MethodPost, "/auth/register", gin.H{
		"email":       "owner@example.com",
		"password":    "password123",
		"name":        "Owner",
		"companyName": "Example Consulting",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email
	w = performRequest(router, http.MethodPost, "/auth/register", gin.H{
		"email":       "owner@example.com",
		"password":    "password123",
		"name":        "Owner",
		"companyName": "Example Consulting",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// Missing required fields
	w = performRequest(router, http.MethodPost, "/auth/register", gin.H{
		"email": "incomplete@example.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password too short
	w = performRequest(router, http.MethodPost, "/auth/register", gin.H{
		"email":       "short@example.com",
		"password":    "short",
		"name":        "Short",
		"companyName": "Example Consulting",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	router := setupTest(t)
	registerTestUser(t, router, "login@example.com")

	// Successful login
	w := performRequest(router, http.MethodPost, "/auth/login", gin.H{
		"email":    "login@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	// Wrong password
	w = performRequest(router, http.MethodPost, "/auth/login", gin.H{
		"email":    "login@example.com",
		"password": "wrongpassword",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown email
	w = performRequest(router, http.MethodPost, "/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	router := setupTest(t)
	_, token := registerTestUser(t, router, "me@example.com")

	w := performRequest(router, http.MethodGet, "/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// Without a token
	w = performRequest(router, http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
