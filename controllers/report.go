// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   float64         `json:"currentMonthRevenue"`
	MonthGrowth           float64         `json:"monthGrowth"`
	CurrentQuarterRevenue float64         `json:"currentQuarterRevenue"`
	QuarterGrowth         float64         `json:"quarterGrowth"`
	CurrentYearRevenue    float64         `json:"currentYearRevenue"`
	YearGrowth            float64         `json:"yearGrowth"`
	TopClients            []ClientSummary `json:"topClients"`
	QuickStats            QuickStatistics `json:"quickStats"`
}

type ClientSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type QuickStatistics struct {
	TotalClients  int64   `json:"totalClients"`
	TotalInvoices int64   `json:"totalInvoices"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// GetReportAnalytics returns revenue analytics for the current user
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
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

	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	currentLocation := now.Location()

	// Periods are half-open [start, nextStart) so documents issued any time
	// on the last day still fall inside the period
	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, currentLocation)
	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)

	currentMonthRevenue, err := rc.getRevenue(userUUID, firstOfMonth, firstOfNextMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}

	lastMonthRevenue, err := rc.getRevenue(userUUID,
		firstOfMonth.AddDate(0, -1, 0), firstOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last month revenue")
		return
	}

	quarterStart := rc.getQuarterStart(now)

	currentQuarterRevenue, err := rc.getRevenue(userUUID,
		quarterStart, quarterStart.AddDate(0, 3, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quarterly revenue")
		return
	}

	lastQuarterRevenue, err := rc.getRevenue(userUUID,
		quarterStart.AddDate(0, -3, 0), quarterStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last quarter revenue")
		return
	}

	yearStart := time.Date(currentYear, 1, 1, 0, 0, 0, 0, currentLocation)

	currentYearRevenue, err := rc.getRevenue(userUUID,
		yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get yearly revenue")
		return
	}

	lastYearRevenue, err := rc.getRevenue(userUUID,
		yearStart.AddDate(-1, 0, 0), yearStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last year revenue")
		return
	}

	// Top clients by paid invoice revenue. Quotes and credit notes never
	// count as revenue
	var topClients []ClientSummary
	config.DB.Raw(`
		SELECT c.name, COUNT(i.id) as count, COALESCE(SUM(i.total_incl_tax), 0) as revenue
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE i.user_id = ? AND i.document_type = 'invoice' AND i.status = 'paid' AND i.deleted_at IS NULL
		GROUP BY c.name
		ORDER BY revenue DESC
		LIMIT 5
	`, userUUID).Scan(&topClients)

	var totalClients, totalInvoices int64
	config.DB.Model(&models.Client{}).Where("user_id = ?", userUUID).Count(&totalClients)
	config.DB.Model(&models.Invoice{}).Where("user_id = ?", userUUID).Count(&totalInvoices)

	var avgOrderValue float64
	config.DB.Model(&models.Invoice{}).
		Where("user_id = ? AND document_type = ? AND status = ?", userUUID, "invoice", "paid").
		Select("COALESCE(AVG(total_incl_tax), 0)").Scan(&avgOrderValue)

	summary := AnalyticsSummary{
		CurrentMonthRevenue:   currentMonthRevenue,
		MonthGrowth:           growth(currentMonthRevenue, lastMonthRevenue),
		CurrentQuarterRevenue: currentQuarterRevenue,
		QuarterGrowth:         growth(currentQuarterRevenue, lastQuarterRevenue),
		CurrentYearRevenue:    currentYearRevenue,
		YearGrowth:            growth(currentYearRevenue, lastYearRevenue),
		TopClients:            topClients,
		QuickStats: QuickStatistics{
			TotalClients:  totalClients,
			TotalInvoices: totalInvoices,
			AvgOrderValue: avgOrderValue,
		},
	}

	c.JSON(http.StatusOK, summary)
}

// getRevenue sums paid invoices issued inside [from, to).
func (rc *ReportController) getRevenue(userID uuid.UUID, from, to time.Time) (float64, error) {
	var revenue float64
	err := config.DB.Model(&models.Invoice{}).
		Where("user_id = ? AND document_type = ? AND status = ? AND issue_date >= ? AND issue_date < ?",
			userID, "invoice", "paid", from, to).
		Select("COALESCE(SUM(total_incl_tax), 0)").Scan(&revenue).Error
	return revenue, err
}

func (rc *ReportController) getQuarterStart(t time.Time) time.Time {
	quarter := (int(t.Month()) - 1) / 3
	return time.Date(t.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, t.Location())
}

func growth(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}
