// controllers/booking.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/services"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput defines the expected JSON structure for the public
// booking intake
type CreateBookingInput struct {
	ClientName  string     `json:"clientName" binding:"required"`
	ClientEmail string     `json:"clientEmail" binding:"required,email"`
	ClientPhone string     `json:"clientPhone"`
	ServiceID   *uuid.UUID `json:"serviceId"`
	Topic       string     `json:"topic"`
	Date        string     `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string     `json:"time" binding:"required"` // HH:MM
	Duration    int        `json:"durationMinutes"`
	Notes       string     `json:"notes"`
}

// UpdateBookingInput defines the expected JSON structure for updating a booking
type UpdateBookingInput struct {
	Status        *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	PaymentStatus *string `json:"paymentStatus" binding:"omitempty,oneof=unpaid paid"`
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	Duration      *int    `json:"durationMinutes"`
	Notes         *string `json:"notes"`
}

func parseBookingSlot(date, hour string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hour, time.Local)
}

// findSlotConflict reports an existing pending/confirmed booking overlapping
// the requested window. Overlap is checked in code so it behaves the same on
// every database.
func findSlotConflict(startsAt time.Time, duration int, excludeID uuid.UUID) (bool, error) {
	dayStart := utils.BeginningOfDay(startsAt)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var existing []models.Booking
	if err := config.DB.Where("status IN ? AND starts_at >= ? AND starts_at < ?",
		[]string{"pending", "confirmed"}, dayStart, dayEnd).Find(&existing).Error; err != nil {
		return false, err
	}

	endsAt := startsAt.Add(time.Duration(duration) * time.Minute)
	for _, b := range existing {
		if b.ID == excludeID {
			continue
		}
		if startsAt.Before(b.EndsAt()) && endsAt.After(b.StartsAt) {
			return true, nil
		}
	}
	return false, nil
}

// CreateBooking handles the public booking intake. All validation happens
// before any external call.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ClientPhone != "" && !utils.ValidatePhone(input.ClientPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	startsAt, err := parseBookingSlot(input.Date, input.Time)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
		return
	}

	// Bookings can be switched off from the site settings
	var settings models.SiteSettings
	if err := config.DB.First(&settings).Error; err == nil && !settings.BookingEnabled {
		utils.RespondWithError(c, http.StatusForbidden, "Booking is currently disabled")
		return
	}

	duration := input.Duration
	topic := input.Topic

	if input.ServiceID != nil {
		var service models.Service
		if err := config.DB.Where("id = ?", *input.ServiceID).First(&service).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		if !service.IsActive || !service.IsBookable {
			utils.RespondWithError(c, http.StatusBadRequest, "Service is not bookable")
			return
		}
		if topic == "" {
			topic = service.TitleFR
		}
		if duration == 0 {
			duration = service.DurationMinutes
		}
	}

	if topic == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "A topic or service is required")
		return
	}
	if duration == 0 {
		duration = 60
	}

	conflict, err := findSlotConflict(startsAt, duration, uuid.Nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if conflict {
		utils.RespondWithError(c, http.StatusConflict, "This time slot is already booked")
		return
	}

	booking := models.Booking{
		ID:              uuid.New(),
		ClientName:      input.ClientName,
		ClientEmail:     input.ClientEmail,
		ClientPhone:     input.ClientPhone,
		ServiceID:       input.ServiceID,
		Topic:           topic,
		StartsAt:        startsAt,
		DurationMinutes: duration,
		Status:          "pending",
		PaymentStatus:   "unpaid",
		Notes:           input.Notes,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	// Best-effort calendar event, failure is logged and never fatal
	if services.CalendarConnected(config.DB) {
		eventID, meetingLink, err := services.CreateBookingEvent(c.Request.Context(), config.DB, &booking)
		if err != nil {
			log.Printf("Failed to create calendar event for booking %s: %v", booking.ID, err)
		} else {
			booking.CalendarEventID = eventID
			booking.MeetingLink = meetingLink
			if err := config.DB.Save(&booking).Error; err != nil {
				log.Printf("Failed to store calendar event on booking %s: %v", booking.ID, err)
			}
		}
	}

	// Best-effort confirmation email
	if err := services.NewMailer().SendBookingConfirmation(&booking); err != nil {
		log.Printf("Failed to send confirmation email for booking %s: %v", booking.ID, err)
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings retrieves all bookings for the back office
func GetBookings(c *gin.Context) {
	query := config.DB.Order("starts_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a specific booking by ID
func GetBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ?", bookingUUID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking updates the status or schedule of a booking
func UpdateBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ?", bookingUUID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Reschedule if a new slot is provided
	if input.Date != nil || input.Time != nil || input.Duration != nil {
		date := booking.StartsAt.Format("2006-01-02")
		hour := booking.StartsAt.Format("15:04")
		if input.Date != nil {
			date = *input.Date
		}
		if input.Time != nil {
			hour = *input.Time
		}
		startsAt, err := parseBookingSlot(date, hour)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
			return
		}
		duration := booking.DurationMinutes
		if input.Duration != nil {
			duration = *input.Duration
		}

		conflict, err := findSlotConflict(startsAt, duration, booking.ID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if conflict {
			utils.RespondWithError(c, http.StatusConflict, "This time slot is already booked")
			return
		}

		booking.StartsAt = startsAt
		booking.DurationMinutes = duration
	}

	if input.Status != nil {
		booking.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		booking.PaymentStatus = *input.PaymentStatus
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking soft deletes a booking and removes its calendar event
func DeleteBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ?", bookingUUID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	// Best-effort calendar cleanup
	if booking.CalendarEventID != "" {
		if err := services.DeleteBookingEvent(c.Request.Context(), config.DB, booking.CalendarEventID); err != nil {
			log.Printf("Failed to delete calendar event for booking %s: %v", booking.ID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// CreateBookingCalendarEvent creates (or recreates) the calendar event for a
// booking. Requires a connected Google account.
func CreateBookingCalendarEvent(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ?", bookingUUID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	eventID, meetingLink, err := services.CreateBookingEvent(c.Request.Context(), config.DB, &booking)
	if err != nil {
		if errors.Is(err, services.ErrCalendarNotConnected) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Google Calendar not connected")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create calendar event")
		}
		return
	}

	booking.CalendarEventID = eventID
	booking.MeetingLink = meetingLink
	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}
