package repositories

import (
	"github.com/augie-sif/sif-backend/models"
)

// ContentRepository handles database operations for a managed content
// entity. The type parameter selects the table; orderField/ascending set
// the default listing order.
type ContentRepository[T any] struct {
	orderField string
	ascending  bool
}

// FindAll retrieves all records in the repository's default order
func (r *ContentRepository[T]) FindAll() ([]T, error) {
	return FindAll[T](r.orderField, r.ascending)
}

// FindByID retrieves a record by ID; absent records return (nil, nil)
func (r *ContentRepository[T]) FindByID(id string) (*T, error) {
	return FindByID[T](id)
}

// Create inserts a new record
func (r *ContentRepository[T]) Create(record *T) (*T, error) {
	return Create(record)
}

// UpdateFields applies a partial update to a record
func (r *ContentRepository[T]) UpdateFields(id string, fields map[string]any) (bool, error) {
	return UpdateFields[T](id, fields)
}

// Delete removes a record
func (r *ContentRepository[T]) Delete(id string) (bool, error) {
	return Delete[T](id)
}

// NewHomeSectionRepository creates a repository for home page sections
func NewHomeSectionRepository() *ContentRepository[models.HomeSection] {
	return &ContentRepository[models.HomeSection]{orderField: "order_index", ascending: true}
}

// NewAboutSectionRepository creates a repository for About Us sections
func NewAboutSectionRepository() *ContentRepository[models.AboutSection] {
	return &ContentRepository[models.AboutSection]{orderField: "order_index", ascending: true}
}

// NewHoldingRepository creates a repository for portfolio holdings
func NewHoldingRepository() *ContentRepository[models.Holding] {
	return &ContentRepository[models.Holding]{orderField: "ticker", ascending: true}
}

// NewPitchRepository creates a repository for stock pitches
func NewPitchRepository() *ContentRepository[models.Pitch] {
	return &ContentRepository[models.Pitch]{orderField: "pitch_date", ascending: false}
}

// NewNewsletterRepository creates a repository for newsletter posts
func NewNewsletterRepository() *ContentRepository[models.NewsletterPost] {
	return &ContentRepository[models.NewsletterPost]{orderField: "published_at", ascending: false}
}

// NewEventRepository creates a repository for guest speaker events
func NewEventRepository() *ContentRepository[models.Event] {
	return &ContentRepository[models.Event]{orderField: "event_date", ascending: false}
}

// NewGalleryRepository creates a repository for gallery images
func NewGalleryRepository() *ContentRepository[models.GalleryImage] {
	return &ContentRepository[models.GalleryImage]{orderField: "taken_at", ascending: false}
}

// NewNoteRepository creates a repository for meeting minutes
func NewNoteRepository() *ContentRepository[models.Note] {
	return &ContentRepository[models.Note]{orderField: "meeting_date", ascending: false}
}
