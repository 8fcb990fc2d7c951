package models

import (
	"time"

	"gorm.io/gorm"
)

// Holding represents a position in the club's portfolio.
type Holding struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Ticker        string         `json:"ticker" gorm:"not null;index"`
	CompanyName   string         `json:"company_name" gorm:"not null"`
	Sector        string         `json:"sector"`
	Shares        float64        `json:"shares" gorm:"not null"`
	PurchasePrice float64        `json:"purchase_price" gorm:"not null"`
	PurchaseDate  time.Time      `json:"purchase_date"`
	Notes         string         `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
