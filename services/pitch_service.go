package services

import (
	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/models"
	"github.com/augie-sif/sif-backend/repositories"
)

// PitchService handles business logic for stock pitches
type PitchService struct {
	pitches *repositories.ContentRepository[models.Pitch]
}

// NewPitchService creates a new pitch service instance
func NewPitchService() *PitchService {
	return &PitchService{pitches: repositories.NewPitchRepository()}
}

// List retrieves all pitches, most recent first
func (s *PitchService) List() ([]models.Pitch, error) {
	return s.pitches.FindAll()
}

// Get retrieves a single pitch
func (s *PitchService) Get(id string) (*models.Pitch, error) {
	pitch, err := s.pitches.FindByID(id)
	if err != nil {
		return nil, err
	}
	if pitch == nil {
		return nil, ErrNotFound
	}
	return pitch, nil
}

// Create adds a new pitch
func (s *PitchService) Create(req dto.PitchRequest) (*models.Pitch, error) {
	pitch := models.Pitch{
		Title:     req.Title,
		Ticker:    req.Ticker,
		Author:    req.Author,
		Summary:   req.Summary,
		Content:   req.Content,
		PitchDate: req.PitchDate,
	}

	created, err := s.pitches.Create(&pitch)
	if err != nil {
		return nil, err
	}

	RevalidatePages("pitches", created.ID)
	return created, nil
}

// Update modifies a pitch
func (s *PitchService) Update(id string, req dto.PitchRequest) error {
	existing, err := s.pitches.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.pitches.UpdateFields(id, map[string]any{
		"title":      req.Title,
		"ticker":     req.Ticker,
		"author":     req.Author,
		"summary":    req.Summary,
		"content":    req.Content,
		"pitch_date": req.PitchDate,
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	RevalidatePages("pitches", id)
	return nil
}

// Delete removes a pitch
func (s *PitchService) Delete(id string) error {
	ok, err := s.pitches.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	RevalidatePages("pitches", id)
	return nil
}
