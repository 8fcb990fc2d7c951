package models

import (
	"time"

	"gorm.io/gorm"
)

// HomeSection is a block of content rendered on the home page.
type HomeSection struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title      string         `json:"title" gorm:"not null"`
	Content    string         `json:"content" gorm:"type:text;not null"`
	ImageURL   string         `json:"image_url" gorm:"not null"`
	OrderIndex int            `json:"order_index" gorm:"default:0"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// AboutSection is a block of content rendered on the About Us page.
type AboutSection struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title      string         `json:"title" gorm:"not null"`
	Content    string         `json:"content" gorm:"type:text;not null"`
	ImageURL   string         `json:"image_url" gorm:"not null"`
	OrderIndex int            `json:"order_index" gorm:"default:0"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
