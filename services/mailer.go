// services/mailer.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"consultpro-backend/models"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP. When SMTP_HOST is not set the
// mailer is disabled and every send becomes a logged no-op.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailer() *Mailer {
	port := 587
	if env := os.Getenv("SMTP_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	return &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     from,
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		log.Printf("SMTP not configured, skipping email to %s (%s)", to, subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}

// SendBookingConfirmation emails the client after a booking request is
// received. Failures are the caller's problem to log, never fatal.
func (m *Mailer) SendBookingConfirmation(booking *models.Booking) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nWe received your booking request for %s on %s.\n"+
			"We will confirm your appointment shortly.",
		booking.ClientName,
		booking.Topic,
		booking.StartsAt.Format("02/01/2006 at 15:04"),
	)
	if booking.MeetingLink != "" {
		body += "\n\nMeeting link: " + booking.MeetingLink
	}
	return m.Send(booking.ClientEmail, "Your booking request", body)
}

// SendBookingReminder emails the client the day before an appointment.
func (m *Mailer) SendBookingReminder(booking *models.Booking) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nA reminder for your appointment (%s) on %s.",
		booking.ClientName,
		booking.Topic,
		booking.StartsAt.Format("02/01/2006 at 15:04"),
	)
	if booking.MeetingLink != "" {
		body += "\n\nMeeting link: " + booking.MeetingLink
	}
	return m.Send(booking.ClientEmail, "Appointment reminder", body)
}

// SendInvoice notifies the client that a document was issued.
func (m *Mailer) SendInvoice(invoice *models.Invoice) error {
	label := "invoice"
	switch invoice.DocumentType {
	case "quote":
		label = "quote"
	case "credit_note":
		label = "credit note"
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nYour %s %s has been issued for a total of %.2f %s.",
		invoice.Client.Name, label, invoice.Number, invoice.TotalInclTax, invoice.Currency,
	)
	return m.Send(invoice.Client.Email, fmt.Sprintf("Your %s %s", label, invoice.Number), body)
}

// SendContactNotification forwards a contact form submission to the firm.
func (m *Mailer) SendContactNotification(message *models.ContactMessage, to string) error {
	if to == "" {
		return nil
	}
	body := fmt.Sprintf("From: %s <%s>\n\n%s", message.Name, message.Email, message.Message)
	subject := message.Subject
	if subject == "" {
		subject = "New contact message"
	}
	return m.Send(to, subject, body)
}
