package routes

import (
	"net/http"
	"time"

	"allservices/handlers"
	"allservices/middleware"
	"allservices/models"
	"allservices/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
		api.GET("/providers", hb.Auth.GetProviders)
		api.GET("/providers/:id", hb.Auth.GetProvider)

		// Profile endpoints require authentication.
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/profile", hb.Auth.GetProfile)
		api.PUT("/profile", hb.Auth.UpdateProfile)
	}
}

// RegisterServiceRoutes registers the catalog endpoints. Reads are
// public; writes require an authenticated provider.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Services.GetAllServices)
		api.GET("/search", hb.Services.SearchServices)
		api.GET("/category/:category", hb.Services.GetServicesByCategory)
		api.GET("/provider/:providerId", hb.Services.GetServicesByProvider)
		api.GET("/:id", hb.Services.GetService)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleProvider))
		protected.POST("", hb.Services.CreateService)
		protected.PUT("/:id", hb.Services.UpdateService)
		protected.DELETE("/:id", hb.Services.DeleteService)
	}
}

// RegisterBookingRoutes registers the booking endpoints. Every route
// requires authentication; creation is client-only.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRole(models.RoleClient), hb.Bookings.CreateBooking)
		api.GET("/client/my-bookings", middleware.RequireRole(models.RoleClient), hb.Bookings.GetClientBookings)
		api.GET("/provider/my-bookings", middleware.RequireRole(models.RoleProvider), hb.Bookings.GetProviderBookings)
		api.GET("/:id", hb.Bookings.GetBooking)
		api.PUT("/:id/status", hb.Bookings.UpdateBookingStatus)
		api.PUT("/:id/cancel", hb.Bookings.CancelBooking)
	}
}

// RegisterReviewRoutes registers the review endpoints. Listing reviews
// is public; creating and editing require authentication.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/service/:serviceId", hb.Reviews.GetServiceReviews)
		api.GET("/provider/:providerId", hb.Reviews.GetProviderReviews)
		api.GET("/:id", hb.Reviews.GetReview)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", middleware.RequireRole(models.RoleClient), hb.Reviews.CreateReview)
		protected.PUT("/:id", hb.Reviews.UpdateReview)
		protected.DELETE("/:id", hb.Reviews.DeleteReview)
		protected.POST("/:id/helpful", hb.Reviews.MarkReviewHelpful)
	}
}

// RegisterStorageRoutes registers image upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/upload/:folder", hb.Storage.UploadFile)
		api.DELETE("/:publicId", hb.Storage.DeleteFile)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	RegisterAuthRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
