package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"property-review-api/config"
	"property-review-api/middleware"
	"property-review-api/services"
	"property-review-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func reviewService() *services.ReviewService {
	return services.NewReviewService(config.DB, config.DefaultVoucherType())
}

// CreateReview opens a review for a tenant (landlord only). The landlord
// on the review is always the caller.
func CreateReview(c *gin.Context) {
	var req struct {
		TenantID     int     `json:"tenant_id" binding:"required"`
		PropertyID   *int    `json:"property_id"`
		LandlordNote *string `json:"landlord_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.TenantID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.PropertyID != nil && *req.PropertyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property_id"})
		return
	}

	if req.LandlordNote != nil {
		note := utils.SanitizeInput(*req.LandlordNote)
		req.LandlordNote = &note
	}

	landlordID, _ := middleware.CallerIdentity(c)

	review, err := reviewService().Create(landlordID, req.TenantID, req.PropertyID, req.LandlordNote)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"property_review_id": review.ReviewID})
}

// GetReviews lists reviews visible to the caller, newest first. Landlords
// see their own, tenants those opened for them, admins everything. Query
// filters (tenant_id, property_id, status) narrow within that scope.
func GetReviews(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)

	var filter services.ReviewListFilter
	if raw := c.Query("tenant_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant_id filter"})
			return
		}
		filter.TenantID = &id
	}
	if raw := c.Query("property_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property_id filter"})
			return
		}
		filter.PropertyID = &id
	}
	filter.Status = c.Query("status")

	reviews, err := reviewService().List(userID, role, filter)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

// GetReview returns one review with its photos, access-checked.
func GetReview(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil || reviewID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	review, err := reviewService().Get(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch review"})
		return
	}

	userID, role := middleware.CallerIdentity(c)
	if !services.CanAccessReview(review, userID, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}
