package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/services"
)

var uploadService = services.NewUploadService()

// handleServiceError maps a service error to the right status code.
// Unrecognized errors become a generic 500 so internal detail never leaks.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't have permission to perform this action"})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
	}
}

// sessionUserID returns the authenticated user id set by the auth middleware
func sessionUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return userID.(string), true
}

// handleImageUpload serves the upload-image endpoints: validate, store
// under the area prefix, and return the new asset's public URL. Old assets
// are reaped when the owning record commits the new URL, not here.
func handleImageUpload(c *gin.Context, area string) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	url, err := uploadService.UploadImage(c.Request.Context(), area, file)
	if err != nil {
		handleServiceError(c, err, "Upload target not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "message": "Image uploaded successfully"})
}
