package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/services"
)

var pitchService = services.NewPitchService()

// GetPitches returns all stock pitches
func GetPitches(c *gin.Context) {
	pitches, err := pitchService.List()
	if err != nil {
		handleServiceError(c, err, "Pitches not found")
		return
	}
	c.JSON(http.StatusOK, pitches)
}

// GetPitch returns a single pitch
func GetPitch(c *gin.Context) {
	pitch, err := pitchService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Pitch not found")
		return
	}
	c.JSON(http.StatusOK, pitch)
}

// CreatePitch adds a stock pitch
func CreatePitch(c *gin.Context) {
	var req dto.PitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, ticker, author, and content are required"})
		return
	}

	pitch, err := pitchService.Create(req)
	if err != nil {
		handleServiceError(c, err, "Pitch not found")
		return
	}
	c.JSON(http.StatusCreated, pitch)
}

// UpdatePitch modifies a pitch
func UpdatePitch(c *gin.Context) {
	var req dto.PitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, ticker, author, and content are required"})
		return
	}

	if err := pitchService.Update(c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Pitch not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pitch updated successfully"})
}

// DeletePitch removes a pitch
func DeletePitch(c *gin.Context) {
	if err := pitchService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err, "Pitch not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pitch deleted successfully"})
}
