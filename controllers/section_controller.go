package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/services"
)

var homeSectionService = services.NewHomeSectionService()
var aboutSectionService = services.NewAboutSectionService()

// GetHomeSections returns all home page sections in display order
func GetHomeSections(c *gin.Context) {
	sections, err := homeSectionService.List()
	if err != nil {
		handleServiceError(c, err, "Sections not found")
		return
	}
	c.JSON(http.StatusOK, sections)
}

// GetHomeSection returns a single home page section
func GetHomeSection(c *gin.Context) {
	section, err := homeSectionService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Section not found")
		return
	}
	c.JSON(http.StatusOK, section)
}

// CreateHomeSection adds a home page section
func CreateHomeSection(c *gin.Context) {
	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, content, and image URL are required"})
		return
	}

	section, err := homeSectionService.Create(req)
	if err != nil {
		handleServiceError(c, err, "Section not found")
		return
	}
	c.JSON(http.StatusCreated, section)
}

// UpdateHomeSection modifies a home page section
func UpdateHomeSection(c *gin.Context) {
	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, content, and image URL are required"})
		return
	}

	if err := homeSectionService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Section not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section updated successfully"})
}

// DeleteHomeSection removes a home page section
func DeleteHomeSection(c *gin.Context) {
	if err := homeSectionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Section not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted successfully"})
}

// UploadHomeImage stores a new home page image asset
func UploadHomeImage(c *gin.Context) {
	handleImageUpload(c, "home")
}

// GetAboutSections returns all About Us sections in display order
func GetAboutSections(c *gin.Context) {
	sections, err := aboutSectionService.List()
	if err != nil {
		handleServiceError(c, err, "Sections not found")
		return
	}
	c.JSON(http.StatusOK, sections)
}

// GetAboutSection returns a single About Us section
func GetAboutSection(c *gin.Context) {
	section, err := aboutSectionService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Section not found")
		return
	}
	c.JSON(http.StatusOK, section)
}

// CreateAboutSection adds an About Us section
func CreateAboutSection(c *gin.Context) {
	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, content, and image URL are required"})
		return
	}

	section, err := aboutSectionService.Create(req)
	if err != nil {
		handleServiceError(c, err, "Section not found")
		return
	}
	c.JSON(http.StatusCreated, section)
}

// UpdateAboutSection modifies an About Us section
func UpdateAboutSection(c *gin.Context) {
	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, content, and image URL are required"})
		return
	}

	if err := aboutSectionService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Section not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section updated successfully"})
}

// DeleteAboutSection removes an About Us section
func DeleteAboutSection(c *gin.Context) {
	if err := aboutSectionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Section not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted successfully"})
}

// UploadAboutImage stores a new About Us image asset
func UploadAboutImage(c *gin.Context) {
	handleImageUpload(c, "about")
}
