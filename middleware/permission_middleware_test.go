package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augie-sif/sif-backend/models"
	"github.com/augie-sif/sif-backend/services"
)

func testRouter(key models.PermissionKey) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", Auth(), RequirePermission(key), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGuardedRouteWithoutToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := testRouter(models.PermAdmin)

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuardedRouteWithGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := testRouter(models.PermAdmin)

	rec := doRequest(router, "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuardedRoutePermissionMatrix(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tests := []struct {
		role string
		key  models.PermissionKey
		want int
	}{
		{"admin", models.PermAdmin, http.StatusOK},
		{"president", models.PermAdmin, http.StatusOK},
		{"secretary", models.PermAdmin, http.StatusForbidden},
		{"secretary", models.PermSecretary, http.StatusOK},
		{"holdings_write", models.PermHoldingsWrite, http.StatusOK},
		{"holdings_write", models.PermSecretary, http.StatusForbidden},
		{"holdings_read", models.PermHoldingsRead, http.StatusOK},
		{"user", models.PermAdminDashboard, http.StatusForbidden},
		{"unknown_role", models.PermAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+string(tt.key), func(t *testing.T) {
			token, _, err := services.GenerateToken("u1", "user@example.com", tt.role)
			require.NoError(t, err)

			rec := doRequest(testRouter(tt.key), token)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
