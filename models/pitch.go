package models

import (
	"time"

	"gorm.io/gorm"
)

// Pitch represents a stock pitch presented to the club.
type Pitch struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title     string         `json:"title" gorm:"not null"`
	Ticker    string         `json:"ticker" gorm:"not null;index"`
	Author    string         `json:"author" gorm:"not null"`
	Summary   string         `json:"summary" gorm:"type:text"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	PitchDate time.Time      `json:"pitch_date"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
