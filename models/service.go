package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	TitleFR       string `gorm:"not null"`
	TitleEN       string
	DescriptionFR string `gorm:"type:text"`
	DescriptionEN string `gorm:"type:text"`

	Price           float64 `gorm:"type:decimal(10,2);not null"`
	DurationMinutes int     `gorm:"default:60"`
	DisplayOrder    int     `gorm:"default:0"`
	IsActive        bool    `gorm:"default:true"`
	IsBookable      bool    `gorm:"default:true"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
