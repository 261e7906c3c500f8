package controllers

import (
	"net/http"

	"property-review-api/config"
	"property-review-api/middleware"
	"property-review-api/models"
	"property-review-api/services"

	"github.com/gin-gonic/gin"
)

type voucherResponse struct {
	models.Voucher
	VoucherTypeLabel string `json:"voucher_type_label"`
}

// GetVouchers lists issued vouchers, newest first. Tenants see their own,
// admins see all. Landlords hold no vouchers and get an empty list.
func GetVouchers(c *gin.Context) {
	userID, role := middleware.CallerIdentity(c)

	var vouchers []models.Voucher
	query := services.ScopeVouchers(config.DB.Model(&models.Voucher{}), userID, role)
	if err := query.Order("issued_at DESC").Find(&vouchers).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch vouchers"})
		return
	}

	items := make([]voucherResponse, 0, len(vouchers))
	for _, voucher := range vouchers {
		items = append(items, voucherResponse{
			Voucher:          voucher,
			VoucherTypeLabel: models.VoucherTypeLabel(voucher.VoucherType),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"vouchers": items,
		"total":    len(items),
	})
}
