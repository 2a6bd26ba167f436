// services/calendar.go
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"consultpro-backend/models"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

// ErrCalendarNotConnected is returned when no Google token has been stored.
var ErrCalendarNotConnected = errors.New("Google Calendar not connected")

// GoogleOAuthConfig builds the OAuth config from the environment.
func GoogleOAuthConfig() (*oauth2.Config, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("Google OAuth credentials not configured")
	}

	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")
	if redirectURL == "" {
		redirectURL = "http://localhost:8080/api/calendar/callback"
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}, nil
}

// SaveGoogleToken upserts the stored token for a user.
func SaveGoogleToken(db *gorm.DB, userID uuid.UUID, token *oauth2.Token) error {
	var stored models.GoogleToken
	err := db.Where("user_id = ?", userID).First(&stored).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		stored = models.GoogleToken{UserID: userID}
	}

	stored.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		stored.RefreshToken = token.RefreshToken
	}
	stored.TokenType = token.TokenType
	stored.Expiry = token.Expiry

	return db.Save(&stored).Error
}

// CalendarConnected reports whether any Google token is stored.
func CalendarConnected(db *gorm.DB) bool {
	var count int64
	db.Model(&models.GoogleToken{}).Count(&count)
	return count > 0
}

func loadGoogleToken(db *gorm.DB) (*oauth2.Token, error) {
	var stored models.GoogleToken
	if err := db.Order("updated_at DESC").First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalendarNotConnected
		}
		return nil, err
	}

	return &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		TokenType:    stored.TokenType,
		Expiry:       stored.Expiry,
	}, nil
}

// CreateBookingEvent creates a calendar event with a Meet link for a booking
// and returns the event ID and meeting link.
func CreateBookingEvent(ctx context.Context, db *gorm.DB, booking *models.Booking) (string, string, error) {
	cfg, err := GoogleOAuthConfig()
	if err != nil {
		return "", "", ErrCalendarNotConnected
	}

	token, err := loadGoogleToken(db)
	if err != nil {
		return "", "", err
	}

	srv, err := calendar.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, token)))
	if err != nil {
		return "", "", err
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Consultation: %s", booking.Topic),
		Description: fmt.Sprintf("Booking for %s (%s)", booking.ClientName, booking.ClientEmail),
		Start: &calendar.EventDateTime{
			DateTime: booking.StartsAt.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: booking.EndsAt().Format(time.RFC3339),
		},
		Attendees: []*calendar.EventAttendee{
			{Email: booking.ClientEmail},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := srv.Events.Insert("primary", event).ConferenceDataVersion(1).Do()
	if err != nil {
		return "", "", err
	}

	return created.Id, created.HangoutLink, nil
}

// DeleteBookingEvent removes a previously created calendar event.
func DeleteBookingEvent(ctx context.Context, db *gorm.DB, eventID string) error {
	cfg, err := GoogleOAuthConfig()
	if err != nil {
		return ErrCalendarNotConnected
	}

	token, err := loadGoogleToken(db)
	if err != nil {
		return err
	}

	srv, err := calendar.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, token)))
	if err != nil {
		return err
	}

	return srv.Events.Delete("primary", eventID).Do()
}
