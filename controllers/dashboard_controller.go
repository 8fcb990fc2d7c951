package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/models"
)

// DashboardItem describes one tile on the admin dashboard
type DashboardItem struct {
	Title              string               `json:"title"`
	Description        string               `json:"description"`
	Href               string               `json:"href"`
	RequiredPermission models.PermissionKey `json:"requiredPermission"`
}

var dashboardItems = []DashboardItem{
	{
		Title:              "User Management",
		Description:        "Manage user accounts and permissions",
		Href:               "/admin/users",
		RequiredPermission: models.PermAdmin,
	},
	{
		Title:              "Portfolio Management",
		Description:        "Add, edit, or remove holdings",
		Href:               "/admin/holdings",
		RequiredPermission: models.PermHoldingsWrite,
	},
	{
		Title:              "Stock Pitch Management",
		Description:        "Create and manage stock pitches",
		Href:               "/admin/pitches",
		RequiredPermission: models.PermHoldingsWrite,
	},
	{
		Title:              "Newsletter Management",
		Description:        "Create and edit newsletter posts",
		Href:               "/admin/newsletter",
		RequiredPermission: models.PermAdmin,
	},
	{
		Title:              "Guest Speaker Management",
		Description:        "Manage guest speaker events",
		Href:               "/admin/events",
		RequiredPermission: models.PermAdmin,
	},
	{
		Title:              "Gallery Management",
		Description:        "Upload and manage gallery images",
		Href:               "/admin/gallery",
		RequiredPermission: models.PermSecretary,
	},
	{
		Title:              "Meeting Minutes Management",
		Description:        "Create and manage meeting minutes",
		Href:               "/admin/notes",
		RequiredPermission: models.PermSecretary,
	},
	{
		Title:              "About Us Management",
		Description:        "Edit sections on the About Us page",
		Href:               "/admin/about",
		RequiredPermission: models.PermAdmin,
	},
	{
		Title:              "Home Page Management",
		Description:        "Edit sections on the Home page",
		Href:               "/admin/home",
		RequiredPermission: models.PermAdmin,
	},
}

// GetDashboard returns the dashboard tiles the session's role can access
func GetDashboard(c *gin.Context) {
	role, _ := c.Get("role")
	roleStr, _ := role.(string)

	accessible := make([]DashboardItem, 0, len(dashboardItems))
	for _, item := range dashboardItems {
		if models.RoleHasPermission(models.Role(roleStr), item.RequiredPermission) {
			accessible = append(accessible, item)
		}
	}

	c.JSON(http.StatusOK, gin.H{"items": accessible})
}
