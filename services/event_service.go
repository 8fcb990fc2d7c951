package services

import (
	"context"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/lib/storage"
	"github.com/augie-sif/sif-backend/models"
	"github.com/augie-sif/sif-backend/repositories"
)

type eventStore interface {
	FindAll() ([]models.Event, error)
	FindByID(id string) (*models.Event, error)
	Create(event *models.Event) (*models.Event, error)
	UpdateFields(id string, fields map[string]any) (bool, error)
	Delete(id string) (bool, error)
}

// EventService handles business logic for guest speaker events
type EventService struct {
	events  eventStore
	objects storage.ObjectStorage
}

// NewEventService creates a new event service instance
func NewEventService() *EventService {
	return &EventService{
		events:  repositories.NewEventRepository(),
		objects: storage.Shared(),
	}
}

// List retrieves all events, most recent first
func (s *EventService) List() ([]models.Event, error) {
	return s.events.FindAll()
}

// Get retrieves a single event
func (s *EventService) Get(id string) (*models.Event, error) {
	event, err := s.events.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// Create adds a new event
func (s *EventService) Create(req dto.EventRequest) (*models.Event, error) {
	event := models.Event{
		Title:       req.Title,
		SpeakerName: req.SpeakerName,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		EventDate:   req.EventDate,
	}

	created, err := s.events.Create(&event)
	if err != nil {
		return nil, err
	}

	RevalidatePages("events", created.ID)
	return created, nil
}

// Update modifies an event, reaping a replaced image after persist
func (s *EventService) Update(ctx context.Context, id string, req dto.EventRequest) error {
	existing, err := s.events.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.events.UpdateFields(id, map[string]any{
		"title":        req.Title,
		"speaker_name": req.SpeakerName,
		"description":  req.Description,
		"location":     req.Location,
		"image_url":    req.ImageURL,
		"event_date":   req.EventDate,
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	if existing.ImageURL != req.ImageURL {
		reapAsset(ctx, s.objects, existing.ImageURL)
	}

	RevalidatePages("events", id)
	return nil
}

// Delete removes an event and best-effort deletes its image asset
func (s *EventService) Delete(ctx context.Context, id string) error {
	existing, err := s.events.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.events.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	reapAsset(ctx, s.objects, existing.ImageURL)
	RevalidatePages("events", id)
	return nil
}
