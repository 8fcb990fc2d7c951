package models

import (
	"time"

	"gorm.io/gorm"
)

// Event represents a guest speaker event.
type Event struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string         `json:"title" gorm:"not null"`
	SpeakerName string         `json:"speaker_name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Location    string         `json:"location"`
	ImageURL    string         `json:"image_url"`
	EventDate   time.Time      `json:"event_date"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
