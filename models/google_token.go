package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoogleToken stores the OAuth token used to create calendar events on the
// firm's calendar.
type GoogleToken struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	AccessToken  string `gorm:"type:text;not null"`
	RefreshToken string `gorm:"type:text"`
	TokenType    string `gorm:"default:'Bearer'"`
	Expiry       time.Time

	gorm.Model
}

func (g *GoogleToken) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}
