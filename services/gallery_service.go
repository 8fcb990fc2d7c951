package services

import (
	"context"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/lib/storage"
	"github.com/augie-sif/sif-backend/models"
	"github.com/augie-sif/sif-backend/repositories"
)

type galleryStore interface {
	FindAll() ([]models.GalleryImage, error)
	FindByID(id string) (*models.GalleryImage, error)
	Create(image *models.GalleryImage) (*models.GalleryImage, error)
	UpdateFields(id string, fields map[string]any) (bool, error)
	Delete(id string) (bool, error)
}

// GalleryService handles business logic for gallery images
type GalleryService struct {
	images  galleryStore
	objects storage.ObjectStorage
}

// NewGalleryService creates a new gallery service instance
func NewGalleryService() *GalleryService {
	return &GalleryService{
		images:  repositories.NewGalleryRepository(),
		objects: storage.Shared(),
	}
}

// List retrieves all gallery images, newest first
func (s *GalleryService) List() ([]models.GalleryImage, error) {
	return s.images.FindAll()
}

// Get retrieves a single gallery image
func (s *GalleryService) Get(id string) (*models.GalleryImage, error) {
	image, err := s.images.FindByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrNotFound
	}
	return image, nil
}

// Create adds a new gallery image
func (s *GalleryService) Create(req dto.GalleryRequest) (*models.GalleryImage, error) {
	image := models.GalleryImage{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		TakenAt:     req.TakenAt,
	}

	created, err := s.images.Create(&image)
	if err != nil {
		return nil, err
	}

	RevalidatePages("gallery", created.ID)
	return created, nil
}

// Update modifies a gallery image, reaping the replaced asset after the
// record is persisted
func (s *GalleryService) Update(ctx context.Context, id string, req dto.GalleryRequest) error {
	existing, err := s.images.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.images.UpdateFields(id, map[string]any{
		"title":       req.Title,
		"description": req.Description,
		"image_url":   req.ImageURL,
		"taken_at":    req.TakenAt,
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

	RevalidatePages("gallery", id)
	return nil
}

// Delete removes a gallery image and best-effort deletes its asset
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	existing, err := s.images.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.images.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	reapAsset(ctx, s.objects, existing.ImageURL)
	RevalidatePages("gallery", id)
	return nil
}
