package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/models"
)

// RequirePermission creates a middleware that ensures the session's role
// holds the given permission key. Must run after Auth. Fails closed: no
// identity or an unknown role never passes.
func RequirePermission(key models.PermissionKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok || !models.RoleHasPermission(models.Role(roleStr), key) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
