package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings is a singleton row holding the public site configuration.
type SiteSettings struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	SiteName       string `gorm:"default:'ConsultPro'"`
	ContactEmail   string
	ContactPhone   string
	Address        string
	SocialLinks    JSONB `gorm:"type:jsonb;default:'{}'"`
	BookingEnabled bool  `gorm:"default:true"`

	gorm.Model
}

func (s *SiteSettings) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// Custom JSONB type for flexible settings payloads
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, &j)
	case string:
		return json.Unmarshal([]byte(v), &j)
	default:
		return errors.New("unsupported type for JSONB scan")
	}
}
