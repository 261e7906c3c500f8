package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"property-review-api/config"
	"property-review-api/middleware"
	"property-review-api/models"
	"property-review-api/services"
	"property-review-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UploadLandlordPhotos appends photos to the landlord side of a review.
// Multipart form field: files.
func UploadLandlordPhotos(c *gin.Context) {
	uploadReviewPhotos(c, models.PartyLandlord)
}

// UploadTenantPhotos appends photos to the tenant side of a review created
// for the caller.
func UploadTenantPhotos(c *gin.Context) {
	uploadReviewPhotos(c, models.PartyTenant)
}

// uploadReviewPhotos validates and stores each file in order. Acceptance is
// per file: a rejected file stops the batch but earlier accepted files stay
// appended, and the response carries the count that made it in.
func uploadReviewPhotos(c *gin.Context, party string) {
	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil || reviewID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	service := reviewService()

	review, err := service.Get(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch review"})
		return
	}

	userID, role := middleware.CallerIdentity(c)
	if !services.CanUploadPhotos(review, userID, role, party) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your review"})
		return
	}
	if !review.IsPending() {
		c.JSON(http.StatusConflict, gin.H{"error": "Review no longer pending"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	uploadPath := config.UploadPath()
	if err := utils.EnsureUploadDir(uploadPath); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to create upload directory"})
		return
	}

	uploaded := 0
	for _, file := range files {
		ok, message := utils.ValidatePhotoFile(file.Filename, file.Size)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": message, "uploaded": uploaded})
			return
		}

		storedName := utils.StoredPhotoName(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(uploadPath, storedName)); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to save file", "uploaded": uploaded})
			return
		}

		// uploaded_at/uploaded_by are server-assigned; anything the client
		// sends for them is ignored.
		if _, err := service.AppendPhoto(review, party, utils.PhotoURL(storedName), userID, time.Now()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to record photo", "uploaded": uploaded})
			return
		}
		uploaded++
	}

	c.JSON(http.StatusOK, gin.H{"uploaded": uploaded})
}
