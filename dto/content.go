package dto

import "time"

// SectionRequest carries a home or About Us section create/update.
// OrderIndex is optional; updates keep the stored value when omitted.
type SectionRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	ImageURL   string `json:"image_url" binding:"required"`
	OrderIndex *int   `json:"order_index"`
}

// HoldingRequest carries a portfolio holding create/update
type HoldingRequest struct {
	Ticker        string    `json:"ticker" binding:"required"`
	CompanyName   string    `json:"company_name" binding:"required"`
	Sector        string    `json:"sector"`
	Shares        float64   `json:"shares" binding:"required"`
	PurchasePrice float64   `json:"purchase_price" binding:"required"`
	PurchaseDate  time.Time `json:"purchase_date"`
	Notes         string    `json:"notes"`
}

// PitchRequest carries a stock pitch create/update
type PitchRequest struct {
	Title     string    `json:"title" binding:"required"`
	Ticker    string    `json:"ticker" binding:"required"`
	Author    string    `json:"author" binding:"required"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content" binding:"required"`
	PitchDate time.Time `json:"pitch_date"`
}

// NewsletterRequest carries a newsletter post create/update
type NewsletterRequest struct {
	Title       string    `json:"title" binding:"required"`
	Content     string    `json:"content" binding:"required"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
}

// EventRequest carries a guest speaker event create/update
type EventRequest struct {
	Title       string    `json:"title" binding:"required"`
	SpeakerName string    `json:"speaker_name" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	EventDate   time.Time `json:"event_date"`
}

// GalleryRequest carries a gallery image create/update
type GalleryRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url" binding:"required"`
	TakenAt     time.Time `json:"taken_at"`
}

// NoteRequest carries a meeting minutes create/update
type NoteRequest struct {
	Title       string    `json:"title" binding:"required"`
	Content     string    `json:"content" binding:"required"`
	MeetingDate time.Time `json:"meeting_date"`
}

// RoleUpdateRequest carries a user role change
type RoleUpdateRequest struct {
	Role string `json:"role" binding:"required"`
}

// StatusUpdateRequest carries a user active-flag change
type StatusUpdateRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
