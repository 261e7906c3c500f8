package config

import (
	"os"

	"property-review-api/models"
)

// UploadPath returns the directory photos are stored under. The same
// directory is served read-only at /uploads.
func UploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

// DefaultVoucherType returns the voucher type used when an admin approves
// without a valid type preference.
func DefaultVoucherType() string {
	t := os.Getenv("DEFAULT_VOUCHER_TYPE")
	if !models.IsValidVoucherType(t) {
		return models.VoucherAmazon10
	}
	return t
}
