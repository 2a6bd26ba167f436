package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentBlock is a piece of marketing site copy, stored on the secondary
// content database. The primary key is char(36) rather than uuid because
// the MySQL handle has no native uuid column type.
type ContentBlock struct {
	ID uuid.UUID `gorm:"type:char(36);primary_key"`

	Slug string `gorm:"uniqueIndex;not null"`
	Page string `gorm:"index;default:'home'"`

	TitleFR string
	TitleEN string
	BodyFR  string `gorm:"type:text"`
	BodyEN  string `gorm:"type:text"`

	DisplayOrder int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true"`

	gorm.Model
}

func (cb *ContentBlock) BeforeCreate(tx *gorm.DB) (err error) {
	if cb.ID == uuid.Nil {
		cb.ID = uuid.New()
	}
	return
}
