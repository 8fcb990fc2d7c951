package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/services"
)

var galleryService = services.NewGalleryService()

// GetGalleryImages returns all gallery images
func GetGalleryImages(c *gin.Context) {
	images, err := galleryService.List()
	if err != nil {
		handleServiceError(c, err, "Images not found")
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetGalleryImage returns a single gallery image
func GetGalleryImage(c *gin.Context) {
	image, err := galleryService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Image not found")
		return
	}
	c.JSON(http.StatusOK, image)
}

// CreateGalleryImage adds a gallery image record
func CreateGalleryImage(c *gin.Context) {
	var req dto.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and image URL are required"})
		return
	}

	image, err := galleryService.Create(req)
	if err != nil {
		handleServiceError(c, err, "Image not found")
		return
	}
	c.JSON(http.StatusCreated, image)
}

// UpdateGalleryImage modifies a gallery image record
func UpdateGalleryImage(c *gin.Context) {
	var req dto.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and image URL are required"})
		return
	}

	if err := galleryService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Image not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image updated successfully"})
}

// DeleteGalleryImage removes a gallery image and its asset
func DeleteGalleryImage(c *gin.Context) {
	if err := galleryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Image not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}

// UploadGalleryImage stores a new gallery image asset
func UploadGalleryImage(c *gin.Context) {
	handleImageUpload(c, "gallery")
}
