package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/augie-sif/sif-backend/config"
	"github.com/augie-sif/sif-backend/lib/storage"
	"github.com/augie-sif/sif-backend/utils"
)

// MaxImageSize is the upload ceiling; a file exactly at the limit is accepted.
const MaxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// UploadService validates and stores image uploads
type UploadService struct {
	objects storage.ObjectStorage
}

// NewUploadService creates a new upload service instance
func NewUploadService() *UploadService {
	return &UploadService{objects: storage.Shared()}
}

// ValidateImage checks type and size before any bucket call is made
func (s *UploadService) ValidateImage(file *multipart.FileHeader) error {
	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return fmt.Errorf("%w: invalid file type, only JPEG, PNG, and GIF are supported", ErrValidation)
	}
	if file.Size > MaxImageSize {
		return fmt.Errorf("%w: file size exceeds 5MB limit", ErrValidation)
	}
	return nil
}

// UploadImage validates the file and stores it under the given area prefix,
// returning the asset's public URL.
func (s *UploadService) UploadImage(ctx context.Context, area string, file *multipart.FileHeader) (string, error) {
	if err := s.ValidateImage(file); err != nil {
		return "", err
	}

	name := utils.SanitizeFilename(file.Filename)
	if name == "" || name == "." {
		name = uuid.NewString()
	}
	key := fmt.Sprintf("%s/%d_%s", area, time.Now().UnixMilli(), name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	bucket := config.GetEnv("S3_BUCKET", "sif-assets")
	return s.objects.Upload(ctx, bucket, key, src, file.Size, file.Header.Get("Content-Type"))
}

// reapAsset deletes the object behind a previously stored public URL.
// Best-effort: failures are logged and never propagate, so an orphaned file
// can not fail the mutation that made it orphaned.
func reapAsset(ctx context.Context, objects storage.ObjectStorage, url string) {
	if url == "" {
		return
	}
	bucket, key, ok := objects.ParseURL(url)
	if !ok {
		return
	}
	if err := objects.Delete(ctx, bucket, key); err != nil {
		log.Printf("⚠️ Failed to delete old asset %s/%s: %v", bucket, key, err)
	}
}
