package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/services"
)

var noteService = services.NewNoteService()

// GetNotes returns all meeting minutes
func GetNotes(c *gin.Context) {
	notes, err := noteService.List()
	if err != nil {
		handleServiceError(c, err, "Notes not found")
		return
	}
	c.JSON(http.StatusOK, notes)
}

// GetNote returns a single meeting minutes entry
func GetNote(c *gin.Context) {
	note, err := noteService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Note not found")
		return
	}
	c.JSON(http.StatusOK, note)
}

// CreateNote adds a meeting minutes entry
func CreateNote(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	note, err := noteService.Create(req)
	if err != nil {
		handleServiceError(c, err, "Note not found")
		return
	}
	c.JSON(http.StatusCreated, note)
}

// UpdateNote modifies a meeting minutes entry
func UpdateNote(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	if err := noteService.Update(c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Note not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully"})
}

// DeleteNote removes a meeting minutes entry
func DeleteNote(c *gin.Context) {
	if err := noteService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err, "Note not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
