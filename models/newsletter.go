package models

import (
	"time"

	"gorm.io/gorm"
)

// NewsletterPost is an entry in the club newsletter.
type NewsletterPost struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string         `json:"title" gorm:"not null"`
	Content     string         `json:"content" gorm:"type:text;not null"`
	Author      string         `json:"author"`
	ImageURL    string         `json:"image_url"`
	PublishedAt time.Time      `json:"published_at"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
