package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest wires the router against a fresh in-memory database.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-key")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	// A single connection keeps the shared in-memory database alive and
	// serializes the dashboard's concurrent reads
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Booking{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.ContactMessage{},
		&models.SiteSettings{},
		&models.GoogleToken{},
		&models.ReminderLog{},
		&models.ContentBlock{},
	))

	config.DB = db
	config.ContentDB = db

	return routes.SetupRouter()
}

// performRequest issues an HTTP request against the router. A non-empty
// token is sent as a bearer Authorization header.
func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerTestUser creates a back office user through the API and returns
// its id and token.
func registerTestUser(t *testing.T, router *gin.Engine, email string) (string, string) {
	t.Helper()

	w := performRequest(router, http.MethodPost, "/auth/register", gin.H{
		"email":       email,
		"password":    "password123",
		"name":        "Test User",
		"companyName": "Test Consulting",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.User.ID, resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
