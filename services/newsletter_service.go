package services

import (
	"context"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/lib/storage"
	"github.com/augie-sif/sif-backend/models"
	"github.com/augie-sif/sif-backend/repositories"
)

type newsletterStore interface {
	FindAll() ([]models.NewsletterPost, error)
	FindByID(id string) (*models.NewsletterPost, error)
	Create(post *models.NewsletterPost) (*models.NewsletterPost, error)
	UpdateFields(id string, fields map[string]any) (bool, error)
	Delete(id string) (bool, error)
}

// NewsletterService handles business logic for newsletter posts
type NewsletterService struct {
	posts   newsletterStore
	objects storage.ObjectStorage
}

// NewNewsletterService creates a new newsletter service instance
func NewNewsletterService() *NewsletterService {
	return &NewsletterService{
		posts:   repositories.NewNewsletterRepository(),
		objects: storage.Shared(),
	}
}

// List retrieves all newsletter posts, newest first
func (s *NewsletterService) List() ([]models.NewsletterPost, error) {
	return s.posts.FindAll()
}

// Get retrieves a single newsletter post
func (s *NewsletterService) Get(id string) (*models.NewsletterPost, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create adds a new newsletter post
func (s *NewsletterService) Create(req dto.NewsletterRequest) (*models.NewsletterPost, error) {
	post := models.NewsletterPost{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		ImageURL:    req.ImageURL,
		PublishedAt: req.PublishedAt,
	}

	created, err := s.posts.Create(&post)
	if err != nil {
		return nil, err
	}

	RevalidatePages("newsletter", created.ID)
	return created, nil
}

// Update modifies a newsletter post, reaping a replaced image after persist
func (s *NewsletterService) Update(ctx context.Context, id string, req dto.NewsletterRequest) error {
	existing, err := s.posts.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.posts.UpdateFields(id, map[string]any{
		"title":        req.Title,
		"content":      req.Content,
		"author":       req.Author,
		"image_url":    req.ImageURL,
		"published_at": req.PublishedAt,
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

	RevalidatePages("newsletter", id)
	return nil
}

// Delete removes a newsletter post and best-effort deletes its image asset
func (s *NewsletterService) Delete(ctx context.Context, id string) error {
	existing, err := s.posts.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	ok, err := s.posts.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	reapAsset(ctx, s.objects, existing.ImageURL)
	RevalidatePages("newsletter", id)
	return nil
}
