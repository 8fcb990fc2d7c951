package services

import (
	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/models"
	"github.com/augie-sif/sif-backend/repositories"
)

type noteStore interface {
	FindAll() ([]models.Note, error)
	FindByID(id string) (*models.Note, error)
	Create(note *models.Note) (*models.Note, error)
	UpdateFields(id string, fields map[string]any) (bool, error)
	Delete(id string) (bool, error)
}

// NoteService handles business logic for meeting minutes
type NoteService struct {
	notes noteStore
}

// NewNoteService creates a new note service instance
func NewNoteService() *NoteService {
	return &NoteService{notes: repositories.NewNoteRepository()}
}

// List retrieves all meeting minutes, most recent first
func (s *NoteService) List() ([]models.Note, error) {
	return s.notes.FindAll()
}

// Get retrieves a single note
func (s *NoteService) Get(id string) (*models.Note, error) {
	note, err := s.notes.FindByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	return note, nil
}

// Create adds a new note
func (s *NoteService) Create(req dto.NoteRequest) (*models.Note, error) {
	note := models.Note{
		Title:       req.Title,
		Content:     req.Content,
		MeetingDate: req.MeetingDate,
	}

	created, err := s.notes.Create(&note)
	if err != nil {
		return nil, err
	}

	RevalidatePages("notes", created.ID)
	return created, nil
}

// Update modifies a note
func (s *NoteService) Update(id string, req dto.NoteRequest) error {
	existing, err := s.notes.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.notes.UpdateFields(id, map[string]any{
		"title":        req.Title,
		"content":      req.Content,
		"meeting_date": req.MeetingDate,
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	RevalidatePages("notes", id)
	return nil
}

// Delete removes a note
func (s *NoteService) Delete(id string) error {
	ok, err := s.notes.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	RevalidatePages("notes", id)
	return nil
}
