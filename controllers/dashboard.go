package controllers

import (
	"net/http"
	"time"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// GetDashboardOverview aggregates the back office landing page figures. The
// independent count queries run concurrently.
func GetDashboardOverview(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var (
		totalClients   int64
		totalBookings  int64
		totalInvoices  int64
		unreadMessages int64
		totalRevenue   float64
	)

	g := new(errgroup.Group)

	g.Go(func() error {
		return config.DB.Model(&models.Client{}).
			Where("user_id = ?", userUUID).Count(&totalClients).Error
	})
	g.Go(func() error {
		return config.DB.Model(&models.Booking{}).Count(&totalBookings).Error
	})
	g.Go(func() error {
		return config.DB.Model(&models.Invoice{}).
			Where("user_id = ?", userUUID).Count(&totalInvoices).Error
	})
	g.Go(func() error {
		return config.DB.Model(&models.ContactMessage{}).
			Where("is_read = ?", false).Count(&unreadMessages).Error
	})
	g.Go(func() error {
		// Revenue counts only the requesting user's paid invoices
		return config.DB.Model(&models.Invoice{}).
			Where("user_id = ? AND document_type = ? AND status = ?", userUUID, "invoice", "paid").
			Select("COALESCE(SUM(total_incl_tax), 0)").Scan(&totalRevenue).Error
	})

	if err := g.Wait(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	// Upcoming bookings (next 5)
	var upcomingBookings []models.Booking
	config.DB.Where("status != ? AND starts_at >= ?", "cancelled", time.Now()).
		Order("starts_at ASC").Limit(5).Find(&upcomingBookings)

	// Recent messages (last 5)
	var recentMessages []models.ContactMessage
	config.DB.Order("created_at DESC").Limit(5).Find(&recentMessages)

	c.JSON(http.StatusOK, gin.H{
		"totalClients":     totalClients,
		"totalBookings":    totalBookings,
		"totalInvoices":    totalInvoices,
		"unreadMessages":   unreadMessages,
		"totalRevenue":     totalRevenue,
		"upcomingBookings": upcomingBookings,
		"recentMessages":   recentMessages,
	})
}
