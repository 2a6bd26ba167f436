package main

import (
	"fmt"
	"log"
	"os"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/routes"
	"consultpro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
	config.ConnectContentDB()

	if err := config.DB.AutoMigrate(
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
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	// Content blocks live on the secondary database when one is configured
	if err := config.ContentDB.AutoMigrate(&models.ContentBlock{}); err != nil {
		log.Fatalf("Failed to migrate content database: %v", err)
	}
}

func main() {
	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
