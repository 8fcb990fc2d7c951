package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/services"
)

var newsletterService = services.NewNewsletterService()

// GetNewsletterPosts returns all newsletter posts
func GetNewsletterPosts(c *gin.Context) {
	posts, err := newsletterService.List()
	if err != nil {
		handleServiceError(c, err, "Posts not found")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetNewsletterPost returns a single newsletter post
func GetNewsletterPost(c *gin.Context) {
	post, err := newsletterService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreateNewsletterPost adds a newsletter post
func CreateNewsletterPost(c *gin.Context) {
	var req dto.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	post, err := newsletterService.Create(req)
	if err != nil {
		handleServiceError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdateNewsletterPost modifies a newsletter post
func UpdateNewsletterPost(c *gin.Context) {
	var req dto.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	if err := newsletterService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully"})
}

// DeleteNewsletterPost removes a newsletter post
func DeleteNewsletterPost(c *gin.Context) {
	if err := newsletterService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// UploadNewsletterImage stores a new newsletter image asset
func UploadNewsletterImage(c *gin.Context) {
	handleImageUpload(c, "newsletter")
}
