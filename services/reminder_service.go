// services/reminder_service.go
package services

import (
	"log"
	"os"
	"time"

	"consultpro-backend/models"
	"consultpro-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	mailer *Mailer
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Twilio SMS is an optional channel
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &ReminderService{
		db:     db,
		mailer: NewMailer(),
		client: client,
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", func() {
		s.SendBookingReminders()
		s.SweepOverdueInvoices()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendBookingReminders notifies clients of tomorrow's confirmed bookings.
func (s *ReminderService) SendBookingReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var bookings []models.Booking
	if err := s.db.Where("status = ? AND starts_at >= ? AND starts_at < ?",
		"confirmed", tomorrow, dayAfter).Find(&bookings).Error; err != nil {
		log.Printf("Failed to fetch bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		var sent int64
		s.db.Model(&models.ReminderLog{}).
			Where("booking_id = ? AND status = ?", booking.ID, "sent").
			Count(&sent)
		if sent > 0 {
			continue
		}

		s.sendReminder(&booking)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) sendReminder(booking *models.Booking) {
	status := "sent"
	errorMsg := ""

	if err := s.mailer.SendBookingReminder(booking); err != nil {
		log.Printf("Failed to send reminder email to %s: %v", booking.ClientEmail, err)
		status = "failed"
		errorMsg = err.Error()
	}

	reminderLog := models.ReminderLog{
		BookingID:    booking.ID,
		Channel:      "email",
		Recipient:    booking.ClientEmail,
		Message:      "Appointment reminder for " + booking.StartsAt.Format("02/01/2006 15:04"),
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for booking %s: %v", booking.ID, err)
	}

	if s.client != nil && booking.ClientPhone != "" {
		s.sendSMS(booking)
	}
}

func (s *ReminderService) sendSMS(booking *models.Booking) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(booking.ClientPhone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody("Reminder: your consultation is scheduled for " +
		booking.StartsAt.Format("02/01/2006 15:04"))

	status := "sent"
	errorMsg := ""
	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send SMS to %s: %v", booking.ClientPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("SMS sent to %s, SID: %s", booking.ClientPhone, *resp.Sid)
	}

	reminderLog := models.ReminderLog{
		BookingID:    booking.ID,
		Channel:      "sms",
		Recipient:    booking.ClientPhone,
		Message:      "Appointment reminder",
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log SMS reminder for booking %s: %v", booking.ID, err)
	}
}

// SweepOverdueInvoices flags sent invoices past their due date.
func (s *ReminderService) SweepOverdueInvoices() {
	result := s.db.Model(&models.Invoice{}).
		Where("document_type = ? AND status = ? AND due_date IS NOT NULL AND due_date < ?",
			"invoice", "sent", time.Now()).
		Update("status", "overdue")
	if result.Error != nil {
		log.Printf("Failed to sweep overdue invoices: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Marked %d invoices overdue", result.RowsAffected)
	}
}
