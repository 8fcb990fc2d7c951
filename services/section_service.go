package services

import (
	"context"
	"fmt"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/lib/storage"
	"github.com/augie-sif/sif-backend/models"
	"github.com/augie-sif/sif-backend/repositories"
)

type homeSectionStore interface {
	FindAll() ([]models.HomeSection, error)
	FindByID(id string) (*models.HomeSection, error)
	Create(section *models.HomeSection) (*models.HomeSection, error)
	UpdateFields(id string, fields map[string]any) (bool, error)
	Delete(id string) (bool, error)
}

type aboutSectionStore interface {
	FindAll() ([]models.AboutSection, error)
	FindByID(id string) (*models.AboutSection, error)
	Create(section *models.AboutSection) (*models.AboutSection, error)
	UpdateFields(id string, fields map[string]any) (bool, error)
	Delete(id string) (bool, error)
}

func validateSectionRequest(req dto.SectionRequest) error {
	if req.Title == "" || req.Content == "" || req.ImageURL == "" {
		return fmt.Errorf("%w: title, content, and image URL are required", ErrValidation)
	}
	return nil
}

// HomeSectionService handles business logic for home page sections
type HomeSectionService struct {
	sections homeSectionStore
	objects  storage.ObjectStorage
}

// NewHomeSectionService creates a new home section service instance
func NewHomeSectionService() *HomeSectionService {
	return &HomeSectionService{
		sections: repositories.NewHomeSectionRepository(),
		objects:  storage.Shared(),
	}
}

// List retrieves all home sections in display order
func (s *HomeSectionService) List() ([]models.HomeSection, error) {
	return s.sections.FindAll()
}

// Get retrieves a single home section
func (s *HomeSectionService) Get(id string) (*models.HomeSection, error) {
	section, err := s.sections.FindByID(id)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrNotFound
	}
	return section, nil
}

// Create adds a new home section and revalidates the home page
func (s *HomeSectionService) Create(req dto.SectionRequest) (*models.HomeSection, error) {
	if err := validateSectionRequest(req); err != nil {
		return nil, err
	}

	section := models.HomeSection{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if req.OrderIndex != nil {
		section.OrderIndex = *req.OrderIndex
	}

	created, err := s.sections.Create(&section)
	if err != nil {
		return nil, err
	}

	RevalidatePages("home", created.ID)
	return created, nil
}

// Update modifies a home section. When the image URL changes, the previous
// asset is deleted only after the new record state is persisted, so a failed
// update never leaves the section pointing at a deleted asset.
func (s *HomeSectionService) Update(ctx context.Context, id string, req dto.SectionRequest) error {
	if err := validateSectionRequest(req); err != nil {
		return err
	}

	existing, err := s.sections.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	orderIndex := existing.OrderIndex
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	}

	ok, err := s.sections.UpdateFields(id, map[string]any{
		"title":       req.Title,
		"content":     req.Content,
		"image_url":   req.ImageURL,
		"order_index": orderIndex,
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

	RevalidatePages("home", id)
	return nil
}

// Delete removes a home section and best-effort deletes its image asset.
// The record goes first; the asset is unreachable either way.
func (s *HomeSectionService) Delete(ctx context.Context, id string) error {
	existing, err := s.sections.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.sections.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	reapAsset(ctx, s.objects, existing.ImageURL)
	RevalidatePages("home", id)
	return nil
}

// AboutSectionService handles business logic for About Us sections
type AboutSectionService struct {
	sections aboutSectionStore
	objects  storage.ObjectStorage
}

// NewAboutSectionService creates a new about section service instance
func NewAboutSectionService() *AboutSectionService {
	return &AboutSectionService{
		sections: repositories.NewAboutSectionRepository(),
		objects:  storage.Shared(),
	}
}

// List retrieves all about sections in display order
func (s *AboutSectionService) List() ([]models.AboutSection, error) {
	return s.sections.FindAll()
}

// Get retrieves a single about section
func (s *AboutSectionService) Get(id string) (*models.AboutSection, error) {
	section, err := s.sections.FindByID(id)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrNotFound
	}
	return section, nil
}

// Create adds a new about section and revalidates the About Us page
func (s *AboutSectionService) Create(req dto.SectionRequest) (*models.AboutSection, error) {
	if err := validateSectionRequest(req); err != nil {
		return nil, err
	}

	section := models.AboutSection{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if req.OrderIndex != nil {
		section.OrderIndex = *req.OrderIndex
	}

	created, err := s.sections.Create(&section)
	if err != nil {
		return nil, err
	}

	RevalidatePages("about", created.ID)
	return created, nil
}

// Update modifies an about section with the same image-lifecycle rule as
// home sections: persist first, then reap the replaced asset.
func (s *AboutSectionService) Update(ctx context.Context, id string, req dto.SectionRequest) error {
	if err := validateSectionRequest(req); err != nil {
		return err
	}

	existing, err := s.sections.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	orderIndex := existing.OrderIndex
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	}

	ok, err := s.sections.UpdateFields(id, map[string]any{
		"title":       req.Title,
		"content":     req.Content,
		"image_url":   req.ImageURL,
		"order_index": orderIndex,
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

	RevalidatePages("about", id)
	return nil
}

// Delete removes an about section and best-effort deletes its image asset
func (s *AboutSectionService) Delete(ctx context.Context, id string) error {
	existing, err := s.sections.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.sections.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	reapAsset(ctx, s.objects, existing.ImageURL)
	RevalidatePages("about", id)
	return nil
}
