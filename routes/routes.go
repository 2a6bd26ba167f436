package routes

import (
	"os"
	"strings"

	"consultpro-backend/config"
	"consultpro-backend/controllers"
	"consultpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.GET("/profile", controllers.GetProfile)
		auth.PUT("/profile", controllers.UpdateProfile)
	}

	// Public marketing site endpoints
	public := r.Group("/api")
	{
		public.GET("/public/services", controllers.GetPublicServices)
		public.GET("/public/content", controllers.GetPublicContent)
		public.GET("/public/settings", controllers.GetPublicSettings)
		public.POST("/bookings", controllers.CreateBooking)
		public.POST("/contact", controllers.CreateContactMessage)
		public.POST("/chat", controllers.Chat)
		public.GET("/company/:siret", controllers.LookupCompany)
		// Google redirects here after consent
		public.GET("/calendar/callback", controllers.CalendarCallback)
	}

	// Stripe calls this without our auth
	r.POST("/webhooks/stripe", controllers.StripeWebhook)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Booking routes (back office)
		bookings := api.Group("/bookings")
		{
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.PUT("/:id", controllers.UpdateBooking)
			bookings.DELETE("/:id", controllers.DeleteBooking)
			bookings.POST("/:id/calendar-event", controllers.CreateBookingCalendarEvent)
			bookings.POST("/:id/checkout", controllers.CreateBookingCheckout)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", controllers.UpdateInvoice)
			invoices.DELETE("/:id", controllers.DeleteInvoice)
			invoices.POST("/:id/send", controllers.SendInvoice)
			invoices.POST("/:id/checkout", controllers.CreateInvoiceCheckout)
		}

		// Messages inbox
		messages := api.Group("/messages")
		{
			messages.GET("", controllers.GetMessages)
			messages.PATCH("/:id/read", controllers.MarkMessageRead)
			messages.DELETE("/:id", controllers.DeleteMessage)
		}

		// Content blocks
		content := api.Group("/content")
		{
			content.GET("", controllers.GetContentBlocks)
			content.POST("", controllers.CreateContentBlock)
			content.PUT("/:id", controllers.UpdateContentBlock)
			content.DELETE("/:id", controllers.DeleteContentBlock)
		}

		// Site settings
		api.GET("/settings", controllers.GetSettings)
		api.PUT("/settings", controllers.UpdateSettings)

		// Google Calendar connection
		api.GET("/calendar/connect", controllers.ConnectCalendar)
		api.GET("/calendar/status", controllers.CalendarStatus)

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
