package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessage struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Subject string
	Message string `gorm:"type:text;not null"`
	IsRead  bool   `gorm:"default:false"`

	gorm.Model
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
