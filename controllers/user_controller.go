package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/services"
)

var userService = services.NewUserService()

// GetMe returns the authenticated user's own record
func GetMe(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	user, err := userService.Get(userID)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadProfilePicture replaces the authenticated user's profile picture.
// The new asset is uploaded first, the record is committed, and only then
// is the previous asset reaped from the stored record.
func UploadProfilePicture(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	url, err := uploadService.UploadImage(c.Request.Context(), "profile_pictures/"+userID, file)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	if err := userService.SetProfilePicture(c.Request.Context(), userID, url); err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "message": "Profile picture updated successfully"})
}

// GetUsers returns all users
func GetUsers(c *gin.Context) {
	users, err := userService.List()
	if err != nil {
		handleServiceError(c, err, "Users not found")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser returns a single user by ID
func GetUser(c *gin.Context) {
	user, err := userService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUserRole changes a user's role, subject to the rank rule
func UpdateUserRole(c *gin.Context) {
	actorID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req dto.RoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role is required"})
		return
	}

	if err := userService.UpdateRole(actorID, c.Param("id"), req.Role); err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated successfully"})
}

// UpdateUserStatus flips a user's active flag, subject to the rank rule
func UpdateUserStatus(c *gin.Context) {
	actorID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Active status is required"})
		return
	}

	if err := userService.UpdateStatus(actorID, c.Param("id"), *req.IsActive); err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

// ResetUserPassword issues a new random password for a user, subject to the
// rank rule. The plaintext is returned once for the actor to hand over.
func ResetUserPassword(c *gin.Context) {
	actorID, ok := sessionUserID(c)
	if !ok {
		return
	}

	password, err := userService.ResetPassword(actorID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"password": password, "message": "Password reset successfully"})
}

// DeleteUser removes a user, subject to the rank rule
func DeleteUser(c *gin.Context) {
	actorID, ok := sessionUserID(c)
	if !ok {
		return
	}

	if err := userService.Delete(c.Request.Context(), actorID, c.Param("id")); err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
