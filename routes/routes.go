package routes

import (
	"property-review-api/controllers"
	"property-review-api/middleware"
	"property-review-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Property Review API is running",
				})
			})
		}

		// Protected routes (identity established by the user-management layer)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Property reviews
			reviews := protected.Group("/property-reviews")
			{
				// Any party to a review can read it; scoping happens per caller
				reviews.GET("", controllers.GetReviews)
				reviews.GET("/:id", controllers.GetReview)

				// Only landlords open reviews and upload landlord photos
				reviews.POST("", middleware.RequireRole(models.RoleLandlord), controllers.CreateReview)
				reviews.POST("/:id/photos", middleware.RequireRole(models.RoleLandlord), controllers.UploadLandlordPhotos)

				// Tenants upload their own evidence
				reviews.POST("/:id/tenant-photos", middleware.RequireRole(models.RoleTenant), controllers.UploadTenantPhotos)

				// Only admins decide
				reviews.POST("/:id/verdict", middleware.RequireRole(models.RoleAdmin), controllers.SetReviewVerdict)
			}

			// Vouchers
			vouchers := protected.Group("/vouchers")
			{
				vouchers.GET("", controllers.GetVouchers)
			}
		}
	}
}
