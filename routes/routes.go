package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/controllers"
	"github.com/augie-sif/sif-backend/middleware"
	"github.com/augie-sif/sif-backend/models"
)

// SetupRoutes wires all API routes
func SetupRoutes(router *gin.Engine) {
	// Public routes
	router.GET("/", controllers.HealthCheck)

	// Auth routes
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/google", controllers.GoogleAuth)
	}

	// Public content reads feeding the rendered site
	api := router.Group("/api")
	{
		api.GET("/home", controllers.GetHomeSections)
		api.GET("/about", controllers.GetAboutSections)
		api.GET("/gallery", controllers.GetGalleryImages)
		api.GET("/newsletter", controllers.GetNewsletterPosts)
		api.GET("/events", controllers.GetEvents)
		api.GET("/notes", controllers.GetNotes)
	}

	// Holdings and pitches are readable by members with the read grant only
	member := router.Group("/api", middleware.Auth())
	{
		member.GET("/holdings", middleware.RequirePermission(models.PermHoldingsRead), controllers.GetHoldings)
		member.GET("/pitches", middleware.RequirePermission(models.PermHoldingsRead), controllers.GetPitches)

		member.GET("/users/me", controllers.GetMe)
		member.POST("/users/me/profile-picture", controllers.UploadProfilePicture)
	}

	// Admin area: every group re-checks its own permission key server-side
	admin := router.Group("/api/admin", middleware.Auth())
	{
		admin.GET("/dashboard", middleware.RequirePermission(models.PermAdminDashboard), controllers.GetDashboard)

		users := admin.Group("/users", middleware.RequirePermission(models.PermAdmin))
		{
			users.GET("", controllers.GetUsers)
			users.GET("/:id", controllers.GetUser)
			users.PUT("/:id/role", controllers.UpdateUserRole)
			users.PUT("/:id/status", controllers.UpdateUserStatus)
			users.PUT("/:id/reset-password", controllers.ResetUserPassword)
			users.DELETE("/:id", controllers.DeleteUser)
		}

		home := admin.Group("/home", middleware.RequirePermission(models.PermAdmin))
		{
			home.GET("", controllers.GetHomeSections)
			home.POST("", controllers.CreateHomeSection)
			home.GET("/:id", controllers.GetHomeSection)
			home.PUT("/:id", controllers.UpdateHomeSection)
			home.DELETE("/:id", controllers.DeleteHomeSection)
			home.POST("/upload-image", controllers.UploadHomeImage)
		}

		about := admin.Group("/about", middleware.RequirePermission(models.PermAdmin))
		{
			about.GET("", controllers.GetAboutSections)
			about.POST("", controllers.CreateAboutSection)
			about.GET("/:id", controllers.GetAboutSection)
			about.PUT("/:id", controllers.UpdateAboutSection)
			about.DELETE("/:id", controllers.DeleteAboutSection)
			about.POST("/upload-image", controllers.UploadAboutImage)
		}

		holdings := admin.Group("/holdings")
		{
			holdings.GET("", middleware.RequirePermission(models.PermHoldingsRead), controllers.GetHoldings)
			holdings.GET("/:id", middleware.RequirePermission(models.PermHoldingsRead), controllers.GetHolding)

			write := holdings.Group("", middleware.RequirePermission(models.PermHoldingsWrite))
			{
				write.POST("", controllers.CreateHolding)
				write.PUT("/:id", controllers.UpdateHolding)
				write.DELETE("/:id", controllers.DeleteHolding)
			}
		}

		pitches := admin.Group("/pitches")
		{
			pitches.GET("", middleware.RequirePermission(models.PermHoldingsRead), controllers.GetPitches)
			pitches.GET("/:id", middleware.RequirePermission(models.PermHoldingsRead), controllers.GetPitch)

			write := pitches.Group("", middleware.RequirePermission(models.PermHoldingsWrite))
			{
				write.POST("", controllers.CreatePitch)
				write.PUT("/:id", controllers.UpdatePitch)
				write.DELETE("/:id", controllers.DeletePitch)
			}
		}

		newsletter := admin.Group("/newsletter", middleware.RequirePermission(models.PermAdmin))
		{
			newsletter.GET("", controllers.GetNewsletterPosts)
			newsletter.POST("", controllers.CreateNewsletterPost)
			newsletter.GET("/:id", controllers.GetNewsletterPost)
			newsletter.PUT("/:id", controllers.UpdateNewsletterPost)
			newsletter.DELETE("/:id", controllers.DeleteNewsletterPost)
			newsletter.POST("/upload-image", controllers.UploadNewsletterImage)
		}

		events := admin.Group("/events", middleware.RequirePermission(models.PermAdmin))
		{
			events.GET("", controllers.GetEvents)
			events.POST("", controllers.CreateEvent)
			events.GET("/:id", controllers.GetEvent)
			events.PUT("/:id", controllers.UpdateEvent)
			events.DELETE("/:id", controllers.DeleteEvent)
			events.POST("/upload-image", controllers.UploadEventImage)
		}

		gallery := admin.Group("/gallery", middleware.RequirePermission(models.PermSecretary))
		{
			gallery.GET("", controllers.GetGalleryImages)
			gallery.POST("", controllers.CreateGalleryImage)
			gallery.GET("/:id", controllers.GetGalleryImage)
			gallery.PUT("/:id", controllers.UpdateGalleryImage)
			gallery.DELETE("/:id", controllers.DeleteGalleryImage)
			gallery.POST("/upload-image", controllers.UploadGalleryImage)
		}

		notes := admin.Group("/notes", middleware.RequirePermission(models.PermSecretary))
		{
			notes.GET("", controllers.GetNotes)
			notes.POST("", controllers.CreateNote)
			notes.GET("/:id", controllers.GetNote)
			notes.PUT("/:id", controllers.UpdateNote)
			notes.DELETE("/:id", controllers.DeleteNote)
		}
	}
}
