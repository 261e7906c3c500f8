package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"property-review-api/middleware"
	"property-review-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetReviewVerdict records the admin decision on a pending review. On
// thumbs_up a voucher is issued (voucher_type optional, defaulting when
// absent or unrecognized). Repeat calls are a no-op reporting the settled
// status, never a second voucher.
func SetReviewVerdict(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil || reviewID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	var req struct {
		Verdict     string `json:"verdict" binding:"required"`
		VoucherType string `json:"voucher_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Verdict != models.VerdictThumbsUp && req.Verdict != models.VerdictThumbsDown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verdict must be either 'thumbs_up' or 'thumbs_down'"})
		return
	}

	adminID, _ := middleware.CallerIdentity(c)

	result, err := reviewService().SetVerdict(reviewID, req.Verdict, req.VoucherType, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to set verdict"})
		return
	}

	if result.AlreadySet {
		c.JSON(http.StatusOK, gin.H{
			"status":  result.Status,
			"message": "Verdict already set",
		})
		return
	}

	response := gin.H{"status": result.Status}
	if result.VoucherID != nil {
		response["voucher_id"] = *result.VoucherID
	}
	c.JSON(http.StatusOK, response)
}
