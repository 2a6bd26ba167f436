package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	ClientName  string `gorm:"not null"`
	ClientEmail string `gorm:"not null;index"`
	ClientPhone string

	ServiceID *uuid.UUID `gorm:"type:uuid;index"`
	Topic     string     `gorm:"not null"`

	StartsAt        time.Time `gorm:"index;not null"`
	DurationMinutes int       `gorm:"default:60"`

	Status        string `gorm:"type:varchar(20);default:'pending'"` // pending, confirmed, cancelled
	PaymentStatus string `gorm:"type:varchar(20);default:'unpaid'"`  // unpaid, paid

	MeetingLink     string
	CalendarEventID string
	StripeSessionID string
	Notes           string `gorm:"type:text"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

func (b *Booking) EndsAt() time.Time {
	return b.StartsAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}
