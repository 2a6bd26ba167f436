package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Invoice struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Number       string    `gorm:"uniqueIndex;not null"`
	DocumentType string    `gorm:"type:varchar(20);default:'invoice'"` // quote, invoice, credit_note
	Status       string    `gorm:"type:varchar(20);default:'draft'"`   // draft, sent, accepted, rejected, paid, overdue, cancelled
	ClientID     uuid.UUID `gorm:"type:uuid;index;not null"`

	IssueDate time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	DueDate   *time.Time

	TotalExclTax float64 `gorm:"type:decimal(10,2);not null"`
	TotalTax     float64 `gorm:"type:decimal(10,2);not null"`
	TotalInclTax float64 `gorm:"type:decimal(10,2);not null"`
	Currency     string  `gorm:"default:'EUR'"`

	Notes           string `gorm:"type:text"`
	StripeSessionID string

	SentAt *time.Time
	PaidAt *time.Time

	Client Client        `gorm:"foreignKey:ClientID"`
	Items  []InvoiceItem `gorm:"foreignKey:InvoiceID"`

	gorm.Model
}

type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Description  string  `gorm:"not null"`
	Quantity     int     `gorm:"default:1"`
	UnitPrice    float64 `gorm:"type:decimal(10,2);not null"`
	TaxRate      float64 `gorm:"type:decimal(5,2);default:0.0"` // percentage
	TotalExclTax float64 `gorm:"type:decimal(10,2);not null"`
	TotalInclTax float64 `gorm:"type:decimal(10,2);not null"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return
}
