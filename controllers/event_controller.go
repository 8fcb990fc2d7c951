package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/services"
)

var eventService = services.NewEventService()

// GetEvents returns all guest speaker events
func GetEvents(c *gin.Context) {
	events, err := eventService.List()
	if err != nil {
		handleServiceError(c, err, "Events not found")
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent returns a single event
func GetEvent(c *gin.Context) {
	event, err := eventService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Event not found")
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent adds a guest speaker event
func CreateEvent(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and speaker name are required"})
		return
	}

	event, err := eventService.Create(req)
	if err != nil {
		handleServiceError(c, err, "Event not found")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent modifies an event
func UpdateEvent(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and speaker name are required"})
		return
	}

	if err := eventService.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Event not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

// DeleteEvent removes an event
func DeleteEvent(c *gin.Context) {
	if err := eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Event not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// UploadEventImage stores a new event image asset
func UploadEventImage(c *gin.Context) {
	handleImageUpload(c, "events")
}
